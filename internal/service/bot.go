package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	ChooseMove(game *entity.Game) (entity.Move, error)
}

type botService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBotService - rnd may be nil, then the bot is seeded from the clock.
func NewBotService(rnd *rand.Rand) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{
		rnd: rnd,
	}
}

// ChooseMove - a uniformly random legal move for the bot seat; the game is not modified.
func (that *botService) ChooseMove(game *entity.Game) (entity.Move, error) {
	if !game.IsWithBot() {
		return entity.Move{}, ErrBotNotFound
	}

	inventory, err := game.Inventory(game.Bot)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get bot inventory: %w", err)
	}

	moves := blokus.LegalMoves(game.Board, *inventory, game.Bot)
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	that.mu.Lock()
	chosen := moves[that.rnd.Intn(len(moves))]
	that.mu.Unlock()

	return chosen, nil
}
