package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

type mockGameService struct {
	mock.Mock
}

func (that *mockGameService) CreateGame(ctx context.Context, gameType string, players int) (*entity.Game, error) {
	args := that.Called(ctx, gameType, players)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameService) DeleteGame(ctx context.Context, gameID string) error {
	return that.Called(ctx, gameID).Error(0)
}

type mockGamePlayService struct {
	mock.Mock
}

func (that *mockGamePlayService) MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error) {
	args := that.Called(ctx, gameID, player, pieceIndex, position)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlayService) Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error) {
	args := that.Called(ctx, gameID, player, pieceIndex, position)
	return args.Get(0).(blokus.Verdict), args.Error(1)
}

func (that *mockGamePlayService) LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error) {
	args := that.Called(ctx, gameID, player)
	moves, _ := args.Get(0).([]entity.Move)
	return moves, args.Error(1)
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	return that.Called(ctx, result).Error(0)
}

func (that *mockResultRepo) ListRecent(ctx context.Context, limit int64) ([]entity.Result, error) {
	args := that.Called(ctx, limit)
	results, _ := args.Get(0).([]entity.Result)
	return results, args.Error(1)
}
