package entity

import (
	"errors"
	"fmt"
)

// Player is the ownership tag of a cell and the index of an inventory.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
	Player3
	Player4
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

var ErrInvalidPlayer = errors.New("invalid player")

// PlayerFromIndex - converts a zero-based inventory index into a player.
func PlayerFromIndex(index int) Player {
	if index < 0 || index >= MaxPlayers {
		return NoPlayer
	}
	return Player(index + 1)
}

func (that Player) Valid() bool {
	return that >= Player1 && that <= MaxPlayers
}

// ValidFor - reports whether the player takes part in a game of count players.
func (that Player) ValidFor(count int) bool {
	return that.Valid() && int(that) <= count
}

// Index - zero-based inventory index, -1 for NoPlayer.
func (that Player) Index() int {
	return int(that) - 1
}

// Next - the player after this one in a game of count players.
func (that Player) Next(count int) Player {
	if count < 1 {
		return NoPlayer
	}
	return Player(int(that)%count + 1)
}

// Mark - single character used when projecting the board to text.
func (that Player) Mark() byte {
	if !that.Valid() {
		return '.'
	}
	return byte('0' + int(that))
}

func (that Player) String() string {
	if !that.Valid() {
		return "NoPlayer"
	}
	return fmt.Sprintf("Player%d", int(that))
}

// ValidatePlayerCount - player count must allow one starting corner per player.
func ValidatePlayerCount(count int) error {
	if count < MinPlayers || count > MaxPlayers {
		return fmt.Errorf("%w: %d players, want %d..%d", ErrInvalidPlayer, count, MinPlayers, MaxPlayers)
	}
	return nil
}
