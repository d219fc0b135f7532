package entity

// Inventory is the ordered list of pieces a player has not placed yet.
type Inventory []Piece

// NewInventories - every player receives a copy of the same pieces.
func NewInventories(players int, pieces []Piece) []Inventory {
	inventories := make([]Inventory, players)
	for i := range inventories {
		inventories[i] = make(Inventory, len(pieces))
		copy(inventories[i], pieces)
	}
	return inventories
}

// Index - position of the first piece with the same shape, -1 if none.
func (that Inventory) Index(piece Piece) int {
	for i, candidate := range that {
		if candidate.Equal(piece) {
			return i
		}
	}
	return -1
}

func (that Inventory) Contains(piece Piece) bool {
	return that.Index(piece) >= 0
}

// Remove - drops the first piece with the same shape.
func (that *Inventory) Remove(piece Piece) bool {
	idx := that.Index(piece)
	if idx < 0 {
		return false
	}

	*that = append((*that)[:idx:idx], (*that)[idx+1:]...)
	return true
}

// Move is a candidate placement; it is never persisted.
type Move struct {
	Piece    Piece    `json:"piece"`
	Position Position `json:"position"`
	Player   Player   `json:"player"`
}
