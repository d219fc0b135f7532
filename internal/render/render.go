// Package render projects the board and pieces to text: one character per cell.
package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

const emptyCell = "."

type Renderer struct {
	au aurora.Aurora
}

// New - colors enables ANSI escapes, one color per player.
func New(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

func (that *Renderer) Board(board *entity.Board) string {
	var sb strings.Builder
	sb.Grow(board.Rows * (board.Cols + 1))

	for row := range board.Rows {
		for col := range board.Cols {
			owner, owned := board.CellAt(row, col)
			if !owned {
				sb.WriteString(emptyCell)
				continue
			}
			sb.WriteString(that.mark(owner))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Piece - the mask drawn with the player's mark, empty cells as spaces.
func (that *Renderer) Piece(piece entity.Piece, player entity.Player) string {
	var sb strings.Builder

	for _, row := range piece.Mask {
		for _, occupied := range row {
			if occupied {
				sb.WriteString(that.mark(player))
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Inventory - numbered list of the pieces, as shown when prompting for a move.
func (that *Renderer) Inventory(inventory entity.Inventory) string {
	var sb strings.Builder

	for i, piece := range inventory {
		fmt.Fprintf(&sb, "%d: %s\n", i, piece)
	}

	return sb.String()
}

func (that *Renderer) mark(player entity.Player) string {
	mark := string(player.Mark())

	switch player {
	case entity.Player1:
		return that.au.Red(mark).String()
	case entity.Player2:
		return that.au.Blue(mark).String()
	case entity.Player3:
		return that.au.Green(mark).String()
	case entity.Player4:
		return that.au.Yellow(mark).String()
	default:
		return mark
	}
}
