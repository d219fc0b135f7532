package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

func TestRenderer_Board(t *testing.T) {
	t.Run("Plain text", func(t *testing.T) {
		// Given: a 3x4 board with one cell per player
		board, err := entity.NewBoard(3, 4)
		require.NoError(t, err)
		require.NoError(t, board.SetOwner(0, 0, entity.Player1))
		require.NoError(t, board.SetOwner(2, 3, entity.Player2))

		// When: the board is rendered without colors
		text := New(false).Board(board)

		// Then: one character per cell, one line per row
		assert.Equal(t, "1...\n....\n...2\n", text)
	})

	t.Run("Colored marks keep the digit", func(t *testing.T) {
		board, err := entity.NewBoard(1, 2)
		require.NoError(t, err)
		require.NoError(t, board.SetOwner(0, 1, entity.Player2))

		text := New(true).Board(board)

		assert.Contains(t, text, "2")
		assert.Contains(t, text, "\x1b[")
		assert.NotEqual(t, ".2\n", text)
	})
}

func TestRenderer_Piece(t *testing.T) {
	piece := entity.SamplePieces()[0]

	assert.Equal(t, "11\n1 \n", New(false).Piece(piece, entity.Player1))
}

func TestRenderer_Inventory(t *testing.T) {
	text := New(false).Inventory(entity.Inventory(entity.SamplePieces()))

	assert.Equal(t, "0: V3 ##/#.\n1: I3 ###\n", text)
}
