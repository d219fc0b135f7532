package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

type GameService interface {
	CreateGame(ctx context.Context, gameType string, players int) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameSettings - shape of every new game unless the caller overrides the player count.
type GameSettings struct {
	Rows    int
	Cols    int
	Players int
	Pieces  []entity.Piece
}

type gameService struct {
	gameRepo gameRepo
	settings GameSettings
}

func NewGameService(gameRepo gameRepo, settings GameSettings) GameService {
	return &gameService{
		gameRepo: gameRepo,
		settings: settings,
	}
}

// CreateGame - players == 0 falls back to the configured player count.
func (that *gameService) CreateGame(ctx context.Context, gameType string, players int) (*entity.Game, error) {
	if !entity.IsKnownType(gameType) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, gameType)
	}

	if players == 0 {
		players = that.settings.Players
	}

	if err := entity.ValidatePlayerCount(players); err != nil {
		return nil, err
	}

	board, err := entity.NewBoard(that.settings.Rows, that.settings.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), gameType, board, players, that.settings.Pieces)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}
	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
