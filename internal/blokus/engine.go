// Package blokus holds the placement rules: which moves are legal, how a legal move
// changes the board, and when the game is over. Nothing here mutates its inputs
// except Apply.
package blokus

import (
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

var (
	edgeNeighbours = [4]entity.Position{
		{Row: -1, Col: 0},
		{Row: 1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: 1},
	}

	cornerNeighbours = [4]entity.Position{
		{Row: -1, Col: -1},
		{Row: -1, Col: 1},
		{Row: 1, Col: -1},
		{Row: 1, Col: 1},
	}
)

// Evaluate - decides whether player may place piece with its top-left corner at position.
func Evaluate(board *entity.Board, piece entity.Piece, position entity.Position, player entity.Player) Verdict {
	if !player.Valid() {
		return Illegal(ReasonInvalidPlayer)
	}

	cells := piece.Cells()
	if len(cells) == 0 {
		return Illegal(ReasonEmptyPiece)
	}

	for _, offset := range cells {
		cell := position.Add(offset)
		if !board.InBounds(cell.Row, cell.Col) {
			return Illegal(ReasonOutOfBounds)
		}
		if _, owned := board.CellAt(cell.Row, cell.Col); owned {
			return Illegal(ReasonOverlap)
		}
	}

	if !board.HasClaimed(player) {
		return evaluateFirstMove(board, cells, position, player)
	}

	// flags accumulate over every occupied cell
	var touchesEdge, touchesCorner bool
	for _, offset := range cells {
		cell := position.Add(offset)
		touchesEdge = touchesEdge || touchesOwn(board, cell, edgeNeighbours, player)
		touchesCorner = touchesCorner || touchesOwn(board, cell, cornerNeighbours, player)
	}

	switch {
	case touchesEdge:
		return Illegal(ReasonEdgeAdjacency)
	case !touchesCorner:
		return Illegal(ReasonNoCornerAdjacency)
	default:
		return Legal()
	}
}

// IsFirstMove - a player's first placement is the one made while they own no cell.
func IsFirstMove(board *entity.Board, player entity.Player) bool {
	return !board.HasClaimed(player)
}

func evaluateFirstMove(board *entity.Board, cells []entity.Position, position entity.Position, player entity.Player) Verdict {
	corner, ok := board.StartCorner(player)
	if !ok {
		return Illegal(ReasonInvalidPlayer)
	}

	for _, offset := range cells {
		if position.Add(offset) == corner {
			return Legal()
		}
	}

	return Illegal(ReasonMissingCornerStart)
}

func touchesOwn(board *entity.Board, cell entity.Position, neighbours [4]entity.Position, player entity.Player) bool {
	for _, delta := range neighbours {
		neighbour := cell.Add(delta)
		if board.OwnedBy(neighbour.Row, neighbour.Col, player) {
			return true
		}
	}
	return false
}
