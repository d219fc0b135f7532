package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

type GameUseCase interface {
	NewGame(ctx context.Context, gameType string, players int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error)
	Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error)
	LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error)

	Results(ctx context.Context, limit int64) ([]entity.Result, error)
}

type gameService interface {
	CreateGame(ctx context.Context, gameType string, players int) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type gamePlayService interface {
	MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error)
	Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error)
	LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int64) ([]entity.Result, error)
}

type gameUseCase struct {
	logger *slog.Logger

	gameService     gameService
	gamePlayService gamePlayService
	resultRepo      resultRepo
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, gamePlayService gamePlayService, resultRepo resultRepo) GameUseCase {
	return &gameUseCase{
		logger:          logger,
		gameService:     gameService,
		gamePlayService: gamePlayService,
		resultRepo:      resultRepo,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context, gameType string, players int) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, gameType, players)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// MakeTurn - a finished game is archived; archive failures are logged and do not fail the turn.
func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gamePlayService.MakeTurn(ctx, gameID, player, pieceIndex, position)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		if err = that.resultRepo.Save(ctx, entity.NewResult(game, time.Now().UTC())); err != nil {
			log.Error("failed to archive result", "error", err)
		} else {
			log.Info("game finished", "outcome", game.Outcome.String())
		}
	}

	return game, nil
}

func (that *gameUseCase) Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error) {
	verdict, err := that.gamePlayService.Check(ctx, gameID, player, pieceIndex, position)
	if err != nil {
		return blokus.Verdict{}, fmt.Errorf("failed to check move: %w", err)
	}
	return verdict, nil
}

func (that *gameUseCase) LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error) {
	moves, err := that.gamePlayService.LegalMoves(ctx, gameID, player)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal moves: %w", err)
	}
	return moves, nil
}

func (that *gameUseCase) Results(ctx context.Context, limit int64) ([]entity.Result, error) {
	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}
