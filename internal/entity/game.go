package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	LocalType   = "local"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the whole state of one session: board, inventories and whose turn it is.
type Game struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Board       *Board      `json:"board"`
	Inventories []Inventory `json:"inventories"`
	Players     int         `json:"players"`
	Turn        Player      `json:"turn"`
	Bot         Player      `json:"bot,omitempty"`
	Status      string      `json:"status"`
	Moves       int         `json:"moves"`
	Outcome     *Outcome    `json:"outcome,omitempty"`
}

func NewGame(id, gameType string, board *Board, players int, pieces []Piece) *Game {
	game := &Game{
		ID:          id,
		Type:        gameType,
		Board:       board,
		Inventories: NewInventories(players, pieces),
		Players:     players,
		Turn:        Player1,
		Status:      StatusOngoing,
	}

	if gameType == WithBotType {
		game.Bot = PlayerFromIndex(players - 1)
	}

	return game
}

func IsKnownType(gameType string) bool {
	return gameType == LocalType || gameType == WithBotType
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType && that.Bot.Valid()
}

func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == that.Bot
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Inventory - the pieces player still holds.
func (that *Game) Inventory(player Player) (*Inventory, error) {
	if !player.ValidFor(that.Players) || player.Index() >= len(that.Inventories) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	return &that.Inventories[player.Index()], nil
}

// Piece - the piece at index in player's inventory.
func (that *Game) Piece(player Player, index int) (Piece, error) {
	inventory, err := that.Inventory(player)
	if err != nil {
		return Piece{}, err
	}

	if index < 0 || index >= len(*inventory) {
		return Piece{}, fmt.Errorf("%w: index %d of %d", ErrInvalidPiece, index, len(*inventory))
	}

	return (*inventory)[index], nil
}

// AdvanceTurn - passes the turn to the next player still holding pieces.
func (that *Game) AdvanceTurn() {
	next := that.Turn
	for range that.Players {
		next = next.Next(that.Players)
		if len(that.Inventories[next.Index()]) > 0 {
			that.Turn = next
			return
		}
	}
}

// Finish - freezes the game with its outcome.
func (that *Game) Finish(outcome Outcome) {
	that.Status = StatusFinished
	that.Outcome = &outcome
	that.Turn = NoPlayer
}

// Remaining - pieces left per player.
func (that *Game) Remaining() []int {
	remaining := make([]int, len(that.Inventories))
	for i, inventory := range that.Inventories {
		remaining[i] = len(inventory)
	}
	return remaining
}
