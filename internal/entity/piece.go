package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	occupiedMark = '#'
	emptyMark    = '.'
	rowSeparator = "/"
)

var ErrInvalidPiece = errors.New("invalid piece")

// Position is the anchor (top-left) cell of a piece's bounding box.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Add(other Position) Position {
	return Position{Row: that.Row + other.Row, Col: that.Col + other.Col}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Piece is an occupancy mask over a bounding rectangle. Only true cells are part of the piece.
type Piece struct {
	Name string   `json:"name,omitempty"`
	Mask [][]bool `json:"mask"`
}

// SamplePieces - the two shapes every player starts with.
func SamplePieces() []Piece {
	return []Piece{
		{Name: "V3", Mask: [][]bool{{true, true}, {true, false}}},
		{Name: "I3", Mask: [][]bool{{true, true, true}}},
	}
}

// ParsePiece - reads a piece from rows of '#' and '.' separated by '/', e.g. "##/#.".
func ParsePiece(name, notation string) (Piece, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return Piece{}, fmt.Errorf("%w: empty notation", ErrInvalidPiece)
	}

	rows := strings.Split(notation, rowSeparator)
	mask := make([][]bool, len(rows))
	occupied := 0

	for r, row := range rows {
		mask[r] = make([]bool, len(row))
		for c, ch := range row {
			switch ch {
			case occupiedMark:
				mask[r][c] = true
				occupied++
			case emptyMark:
			default:
				return Piece{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidPiece, ch, notation)
			}
		}
	}

	if occupied == 0 {
		return Piece{}, fmt.Errorf("%w: %q has no occupied cells", ErrInvalidPiece, notation)
	}

	return Piece{Name: name, Mask: mask}, nil
}

// Cells - offsets of the occupied cells in row-major order.
func (that Piece) Cells() []Position {
	cells := make([]Position, 0, that.Size())
	for r, row := range that.Mask {
		for c, occupied := range row {
			if occupied {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Size - number of occupied cells.
func (that Piece) Size() int {
	size := 0
	for _, row := range that.Mask {
		for _, occupied := range row {
			if occupied {
				size++
			}
		}
	}
	return size
}

func (that Piece) Height() int {
	return len(that.Mask)
}

func (that Piece) Width() int {
	width := 0
	for _, row := range that.Mask {
		width = max(width, len(row))
	}
	return width
}

// Equal - shape equality; names are ignored.
func (that Piece) Equal(other Piece) bool {
	if len(that.Mask) != len(other.Mask) {
		return false
	}

	for r := range that.Mask {
		if len(that.Mask[r]) != len(other.Mask[r]) {
			return false
		}
		for c := range that.Mask[r] {
			if that.Mask[r][c] != other.Mask[r][c] {
				return false
			}
		}
	}

	return true
}

// Notation - inverse of ParsePiece.
func (that Piece) Notation() string {
	rows := make([]string, len(that.Mask))
	for r, row := range that.Mask {
		var sb strings.Builder
		for _, occupied := range row {
			if occupied {
				sb.WriteByte(occupiedMark)
			} else {
				sb.WriteByte(emptyMark)
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, rowSeparator)
}

func (that Piece) String() string {
	if that.Name == "" {
		return that.Notation()
	}
	return that.Name + " " + that.Notation()
}
