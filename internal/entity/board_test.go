package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board", func(t *testing.T) {
		// When: a 14x14 board is created
		board, err := NewBoard(DefaultRows, DefaultCols)
		require.NoError(t, err)

		// Then: every cell is unowned
		require.Len(t, board.Cells, DefaultRows*DefaultCols)
		for _, cell := range board.Cells {
			assert.Equal(t, NoPlayer, cell)
		}
	})

	t.Run("Rejects zero dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 14)
		require.ErrorIs(t, err, ErrInvalidBoardSize)

		_, err = NewBoard(14, -1)
		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})
}

func TestBoard_SetOwner(t *testing.T) {
	t.Run("Claims a cell", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(5, 5)
		require.NoError(t, err)

		// When: Player1 claims (2, 3)
		require.NoError(t, board.SetOwner(2, 3, Player1))

		// Then: the cell reads back as owned by Player1
		owner, ok := board.CellAt(2, 3)
		assert.True(t, ok)
		assert.Equal(t, Player1, owner)
		assert.True(t, board.HasClaimed(Player1))
		assert.False(t, board.HasClaimed(Player2))
	})

	t.Run("Never owns a cell twice", func(t *testing.T) {
		board, err := NewBoard(5, 5)
		require.NoError(t, err)
		require.NoError(t, board.SetOwner(0, 0, Player1))

		err = board.SetOwner(0, 0, Player2)

		require.ErrorIs(t, err, ErrCellOwned)
		owner, _ := board.CellAt(0, 0)
		assert.Equal(t, Player1, owner)
		assert.Equal(t, 0, board.Claimed[Player2])
	})

	t.Run("Rejects out of bounds writes", func(t *testing.T) {
		board, err := NewBoard(5, 5)
		require.NoError(t, err)

		require.ErrorIs(t, board.SetOwner(5, 0, Player1), ErrCellOutOfBounds)
		require.ErrorIs(t, board.SetOwner(0, -1, Player1), ErrCellOutOfBounds)
	})

	t.Run("Rejects the empty player", func(t *testing.T) {
		board, err := NewBoard(5, 5)
		require.NoError(t, err)

		require.ErrorIs(t, board.SetOwner(1, 1, NoPlayer), ErrInvalidPlayer)
	})
}

func TestBoard_CellAt(t *testing.T) {
	board, err := NewBoard(3, 4)
	require.NoError(t, err)

	_, ok := board.CellAt(-1, 0)
	assert.False(t, ok)

	_, ok = board.CellAt(0, 4)
	assert.False(t, ok)

	_, ok = board.CellAt(2, 3)
	assert.False(t, ok)
}

func TestBoard_StartCorner(t *testing.T) {
	board, err := NewBoard(14, 10)
	require.NoError(t, err)

	corner, ok := board.StartCorner(Player1)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 0}, corner)

	corner, ok = board.StartCorner(Player2)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 13, Col: 9}, corner)

	corner, ok = board.StartCorner(Player3)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 9}, corner)

	corner, ok = board.StartCorner(Player4)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 13, Col: 0}, corner)

	_, ok = board.StartCorner(NoPlayer)
	assert.False(t, ok)
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one claimed cell
	board, err := NewBoard(3, 3)
	require.NoError(t, err)
	require.NoError(t, board.SetOwner(0, 0, Player1))

	// When: the clone is mutated
	clone := board.Clone()
	require.NoError(t, clone.SetOwner(1, 1, Player2))

	// Then: the original is untouched
	_, ok := board.CellAt(1, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, board.Claimed[Player2])
	assert.Equal(t, 1, clone.Claimed[Player2])
}
