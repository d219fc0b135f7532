package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePiece(t *testing.T) {
	t.Run("Parses rows", func(t *testing.T) {
		piece, err := ParsePiece("V3", "##/#.")
		require.NoError(t, err)

		assert.Equal(t, [][]bool{{true, true}, {true, false}}, piece.Mask)
		assert.Equal(t, "##/#.", piece.Notation())
		assert.Equal(t, 3, piece.Size())
		assert.Equal(t, 2, piece.Height())
		assert.Equal(t, 2, piece.Width())
	})

	t.Run("Rejects unknown characters", func(t *testing.T) {
		_, err := ParsePiece("", "#x#")
		require.ErrorIs(t, err, ErrInvalidPiece)
	})

	t.Run("Rejects pieces without cells", func(t *testing.T) {
		_, err := ParsePiece("", "../..")
		require.ErrorIs(t, err, ErrInvalidPiece)

		_, err = ParsePiece("", "  ")
		require.ErrorIs(t, err, ErrInvalidPiece)
	})
}

func TestPiece_Cells(t *testing.T) {
	piece := Piece{Mask: [][]bool{{false, true}, {true, true}}}

	assert.Equal(t, []Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, piece.Cells())
}

func TestPiece_Equal(t *testing.T) {
	samples := SamplePieces()

	assert.True(t, samples[0].Equal(Piece{Name: "other", Mask: [][]bool{{true, true}, {true, false}}}))
	assert.False(t, samples[0].Equal(samples[1]))
	assert.False(t, samples[0].Equal(Piece{Mask: [][]bool{{true, true}, {false, true}}}))
	assert.False(t, samples[1].Equal(Piece{Mask: [][]bool{{true}, {true}, {true}}}))
}
