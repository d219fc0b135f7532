package blokus

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

var ErrPieceNotInInventory = errors.New("piece is not in the inventory")

// Apply - commits a placement that Evaluate has already accepted: claims every
// occupied cell for player and removes one piece of the same shape from inventory.
func Apply(board *entity.Board, inventory *entity.Inventory, piece entity.Piece, position entity.Position, player entity.Player) error {
	if !inventory.Contains(piece) {
		return fmt.Errorf("%w: %s", ErrPieceNotInInventory, piece)
	}

	for _, offset := range piece.Cells() {
		cell := position.Add(offset)
		if err := board.SetOwner(cell.Row, cell.Col, player); err != nil {
			return fmt.Errorf("failed to claim %s: %w", cell, err)
		}
	}

	inventory.Remove(piece)

	return nil
}

// IsGameOver - the game ends once every inventory is empty.
func IsGameOver(inventories []entity.Inventory) bool {
	for _, inventory := range inventories {
		if len(inventory) > 0 {
			return false
		}
	}
	return true
}

// DetermineOutcome - fewest remaining pieces wins, a tie for fewest is a draw.
func DetermineOutcome(inventories []entity.Inventory) entity.Outcome {
	outcome := entity.Outcome{Remaining: make([]int, len(inventories))}

	best := -1
	for i, inventory := range inventories {
		remaining := len(inventory)
		outcome.Remaining[i] = remaining

		switch {
		case best < 0 || remaining < best:
			best = remaining
			outcome.Winner = entity.PlayerFromIndex(i)
			outcome.Draw = false
		case remaining == best:
			outcome.Draw = true
		}
	}

	if outcome.Draw || best < 0 {
		outcome.Winner = entity.NoPlayer
		outcome.Draw = true
	}

	return outcome
}
