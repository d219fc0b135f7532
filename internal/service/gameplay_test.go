package service

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
	"github.com/rocketscienceinc/blokus-backend/internal/repository"
)

type gamePlayFixture struct {
	repo        repository.GameRepository
	gameService GameService
	gamePlay    GamePlayService
}

func newGamePlayFixture(t *testing.T) *gamePlayFixture {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := repository.NewMemoryGameRepository()
	gameService := NewGameService(repo, testSettings())

	return &gamePlayFixture{
		repo:        repo,
		gameService: gameService,
		gamePlay:    NewGamePlayService(logger, gameService, NewBotService(rand.New(rand.NewSource(1)))),
	}
}

// storeGame - saves a game with a custom piece set.
func (that *gamePlayFixture) storeGame(t *testing.T, gameType string, pieces ...entity.Piece) *entity.Game {
	t.Helper()

	board, err := entity.NewBoard(entity.DefaultRows, entity.DefaultCols)
	require.NoError(t, err)

	game := entity.NewGame(t.Name(), gameType, board, 2, pieces)
	require.NoError(t, that.repo.CreateOrUpdate(context.Background(), game))

	return game
}

func at(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}

const (
	indexV3 = 0
	indexI3 = 1
)

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a local game to a draw", func(t *testing.T) {
		// Given: a fresh local game with the sample pieces
		fx := newGamePlayFixture(t)
		game, err := fx.gameService.CreateGame(ctx, entity.LocalType, 2)
		require.NoError(t, err)

		// When: Player1 opens in its corner with the bent piece
		game, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, indexV3, at(0, 0))

		// Then: the piece leaves the inventory and Player2 is next
		require.NoError(t, err)
		assert.Equal(t, entity.Player2, game.Turn)
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, []int{1, 2}, game.Remaining())
		assert.Equal(t, 3, game.Board.Claimed[entity.Player1])

		// When: both players finish their inventories
		game, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player2, indexI3, at(13, 11))
		require.NoError(t, err)
		game, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, 0, at(2, 1))
		require.NoError(t, err)
		assert.Equal(t, entity.Player2, game.Turn)
		game, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player2, 0, at(11, 10))
		require.NoError(t, err)

		// Then: the game is finished with equal counts
		assert.True(t, game.IsFinished())
		require.NotNil(t, game.Outcome)
		assert.True(t, game.Outcome.Draw)
		assert.Equal(t, entity.NoPlayer, game.Turn)
		assert.Equal(t, 4, game.Moves)

		stored, err := fx.gameService.GetGameByID(ctx, game.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsFinished())

		_, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, 0, at(5, 5))
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Rejects moves out of turn", func(t *testing.T) {
		fx := newGamePlayFixture(t)
		game, err := fx.gameService.CreateGame(ctx, entity.LocalType, 2)
		require.NoError(t, err)

		_, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player2, indexI3, at(13, 11))

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects illegal placements with the engine reason", func(t *testing.T) {
		// Given: a fresh local game
		fx := newGamePlayFixture(t)
		game, err := fx.gameService.CreateGame(ctx, entity.LocalType, 2)
		require.NoError(t, err)

		// When: Player1 opens away from its corner
		_, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, indexV3, at(5, 5))

		// Then: the move is illegal and nothing is stored
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, blokus.ErrMissingCornerStart)

		stored, err := fx.gameService.GetGameByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Moves)
		assert.Equal(t, entity.Player1, stored.Turn)
	})

	t.Run("Rejects unknown piece indexes", func(t *testing.T) {
		fx := newGamePlayFixture(t)
		game, err := fx.gameService.CreateGame(ctx, entity.LocalType, 2)
		require.NoError(t, err)

		_, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, 7, at(0, 0))

		require.ErrorIs(t, err, entity.ErrInvalidPiece)
	})

	t.Run("Unknown game", func(t *testing.T) {
		fx := newGamePlayFixture(t)

		_, err := fx.gamePlay.MakeTurn(ctx, "missing", entity.Player1, 0, at(0, 0))

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Bot answers right after the human move", func(t *testing.T) {
		// Given: a bot game, the bot plays as Player2
		fx := newGamePlayFixture(t)
		game, err := fx.gameService.CreateGame(ctx, entity.WithBotType, 2)
		require.NoError(t, err)

		// When: Player1 opens
		game, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, indexV3, at(0, 0))

		// Then: the bot has already played its only opening, the straight piece in its corner
		require.NoError(t, err)
		assert.Equal(t, entity.Player1, game.Turn)
		assert.Equal(t, 2, game.Moves)
		assert.Equal(t, []int{1, 1}, game.Remaining())
		owner, _ := game.Board.CellAt(13, 11)
		assert.Equal(t, entity.Player2, owner)

		_, err = fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player2, 0, at(11, 10))
		require.ErrorIs(t, err, apperror.ErrBotTurn)
	})

	t.Run("Bot without legal moves keeps the turn", func(t *testing.T) {
		// Given: a bot game where the bent piece cannot cover Player2's corner
		fx := newGamePlayFixture(t)
		game := fx.storeGame(t, entity.WithBotType, entity.SamplePieces()[0])

		// When: Player1 places its only piece
		game, err := fx.gamePlay.MakeTurn(ctx, game.ID, entity.Player1, 0, at(0, 0))

		// Then: the game waits on the bot
		require.NoError(t, err)
		assert.True(t, game.IsOngoing())
		assert.Equal(t, entity.Player2, game.Turn)
		assert.Equal(t, []int{0, 1}, game.Remaining())
	})
}

func TestGamePlayService_Check(t *testing.T) {
	ctx := context.Background()
	fx := newGamePlayFixture(t)

	game, err := fx.gameService.CreateGame(ctx, entity.LocalType, 2)
	require.NoError(t, err)

	verdict, err := fx.gamePlay.Check(ctx, game.ID, entity.Player2, indexV3, at(5, 5))
	require.NoError(t, err)
	assert.Equal(t, blokus.ReasonMissingCornerStart, verdict.Reason)

	verdict, err = fx.gamePlay.Check(ctx, game.ID, entity.Player2, indexI3, at(13, 11))
	require.NoError(t, err)
	assert.True(t, verdict.Legal())

	// a dry run never changes the stored game
	stored, err := fx.gameService.GetGameByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game, stored)

	_, err = fx.gamePlay.Check(ctx, game.ID, entity.Player3, indexV3, at(0, 0))
	require.ErrorIs(t, err, entity.ErrInvalidPlayer)
}

func TestGamePlayService_LegalMoves(t *testing.T) {
	ctx := context.Background()
	fx := newGamePlayFixture(t)

	game, err := fx.gameService.CreateGame(ctx, entity.LocalType, 2)
	require.NoError(t, err)

	moves, err := fx.gamePlay.LegalMoves(ctx, game.ID, entity.Player1)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	for _, move := range moves {
		assert.Equal(t, at(0, 0), move.Position)
		assert.Equal(t, entity.Player1, move.Player)
	}

	moves, err = fx.gamePlay.LegalMoves(ctx, game.ID, entity.Player2)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "I3", moves[0].Piece.Name)
	assert.Equal(t, at(13, 11), moves[0].Position)
}
