package blokus

import (
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

// LegalMoves - every legal placement of every distinct shape in inventory.
// Anchors may lie above or left of the board when the mask has empty leading rows or columns.
func LegalMoves(board *entity.Board, inventory entity.Inventory, player entity.Player) []entity.Move {
	var moves []entity.Move

	forEachCandidate(board, inventory, player, func(move entity.Move) bool {
		moves = append(moves, move)
		return true
	})

	return moves
}

// HasLegalMove - stops at the first legal placement.
func HasLegalMove(board *entity.Board, inventory entity.Inventory, player entity.Player) bool {
	found := false

	forEachCandidate(board, inventory, player, func(entity.Move) bool {
		found = true
		return false
	})

	return found
}

func forEachCandidate(board *entity.Board, inventory entity.Inventory, player entity.Player, yield func(entity.Move) bool) {
	seen := make(entity.Inventory, 0, len(inventory))

	for _, piece := range inventory {
		if seen.Contains(piece) {
			continue
		}
		seen = append(seen, piece)

		for row := 1 - piece.Height(); row < board.Rows; row++ {
			for col := 1 - piece.Width(); col < board.Cols; col++ {
				position := entity.Position{Row: row, Col: col}
				if !Evaluate(board, piece, position, player).Legal() {
					continue
				}

				if !yield(entity.Move{Piece: piece, Position: position, Player: player}) {
					return
				}
			}
		}
	}
}
