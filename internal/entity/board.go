package entity

import (
	"errors"
	"fmt"
)

const (
	DefaultRows = 14
	DefaultCols = 14
)

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrCellOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOwned        = errors.New("cell is already owned")
)

// Board is a fixed-size grid of cell ownership stored row by row.
// Claimed counts the cells owned by every player, indexed by Player.
type Board struct {
	Rows    int                 `json:"rows"`
	Cols    int                 `json:"cols"`
	Cells   []Player            `json:"cells"`
	Claimed [MaxPlayers + 1]int `json:"claimed"`
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoardSize, rows, cols)
	}

	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Player, rows*cols),
	}, nil
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Rows && col >= 0 && col < that.Cols
}

// CellAt - returns the owner of the cell; off-board and empty cells are not owned.
func (that *Board) CellAt(row, col int) (Player, bool) {
	if !that.InBounds(row, col) {
		return NoPlayer, false
	}

	owner := that.Cells[row*that.Cols+col]
	return owner, owner != NoPlayer
}

// OwnedBy - reports whether the cell exists and belongs to player.
func (that *Board) OwnedBy(row, col int, player Player) bool {
	owner, ok := that.CellAt(row, col)
	return ok && owner == player
}

// SetOwner - claims an empty cell. Cells are never re-assigned.
func (that *Board) SetOwner(row, col int, player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOutOfBounds, row, col)
	}

	idx := row*that.Cols + col
	if that.Cells[idx] != NoPlayer {
		return fmt.Errorf("%w: (%d, %d) by %s", ErrCellOwned, row, col, that.Cells[idx])
	}

	that.Cells[idx] = player
	that.Claimed[player]++

	return nil
}

// HasClaimed - reports whether player owns at least one cell.
func (that *Board) HasClaimed(player Player) bool {
	if !player.Valid() {
		return false
	}
	return that.Claimed[player] > 0
}

// StartCorner - the cell a player's first piece has to cover.
func (that *Board) StartCorner(player Player) (Position, bool) {
	switch player {
	case Player1:
		return Position{Row: 0, Col: 0}, true
	case Player2:
		return Position{Row: that.Rows - 1, Col: that.Cols - 1}, true
	case Player3:
		return Position{Row: 0, Col: that.Cols - 1}, true
	case Player4:
		return Position{Row: that.Rows - 1, Col: 0}, true
	default:
		return Position{}, false
	}
}

func (that *Board) Clone() *Board {
	clone := *that
	clone.Cells = make([]Player, len(that.Cells))
	copy(clone.Cells, that.Cells)
	return &clone
}
