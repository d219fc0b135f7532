package entity

import (
	"fmt"
	"time"
)

// Outcome of a finished game: fewest remaining pieces wins.
type Outcome struct {
	Winner    Player `json:"winner"`
	Draw      bool   `json:"draw"`
	Remaining []int  `json:"remaining"`
}

func (that Outcome) String() string {
	if that.Draw || !that.Winner.Valid() {
		return "It's a draw!"
	}
	return fmt.Sprintf("Player %d wins!", int(that.Winner))
}

// Result is the archived summary of a finished game.
type Result struct {
	GameID     string    `json:"game_id" bson:"game_id"`
	Type       string    `json:"type" bson:"type"`
	Players    int       `json:"players" bson:"players"`
	Winner     Player    `json:"winner" bson:"winner"`
	Draw       bool      `json:"draw" bson:"draw"`
	Remaining  []int     `json:"remaining" bson:"remaining"`
	Moves      int       `json:"moves" bson:"moves"`
	FinishedAt time.Time `json:"finished_at" bson:"finished_at"`
}

func NewResult(game *Game, finishedAt time.Time) *Result {
	result := &Result{
		GameID:     game.ID,
		Type:       game.Type,
		Players:    game.Players,
		Remaining:  game.Remaining(),
		Moves:      game.Moves,
		FinishedAt: finishedAt,
	}

	if game.Outcome != nil {
		result.Winner = game.Outcome.Winner
		result.Draw = game.Outcome.Draw
	}

	return result
}
