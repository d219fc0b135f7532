package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

type GamePlayService interface {
	MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error)

	Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error)
	LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService

	locks *keyedMutex
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
		botService:  botService,
		locks:       newKeyedMutex(),
	}
}

// MakeTurn - validates and applies one move, then lets the bot answer while it holds the turn.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error) {
	unlock := that.locks.Lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if game.IsWithBot() && player == game.Bot {
		return game, apperror.ErrBotTurn
	}

	if game.Turn != player {
		return game, fmt.Errorf("%w: %s moves now", apperror.ErrNotYourTurn, game.Turn)
	}

	piece, err := game.Piece(player, pieceIndex)
	if err != nil {
		return game, fmt.Errorf("failed to get piece: %w", err)
	}

	if verdict := blokus.Evaluate(game.Board, piece, position, player); !verdict.Legal() {
		return game, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, verdict.Err())
	}

	if err = playMove(game, entity.Move{Piece: piece, Position: position, Player: player}); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	that.makeBotTurns(game)

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// Check - the engine verdict for a placement, without turn checks or side effects.
func (that *gamePlayService) Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return blokus.Verdict{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	piece, err := game.Piece(player, pieceIndex)
	if err != nil {
		return blokus.Verdict{}, fmt.Errorf("failed to get piece: %w", err)
	}

	return blokus.Evaluate(game.Board, piece, position, player), nil
}

func (that *gamePlayService) LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	inventory, err := game.Inventory(player)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if game.IsFinished() {
		return []entity.Move{}, nil
	}

	moves := blokus.LegalMoves(game.Board, *inventory, player)
	if moves == nil {
		moves = []entity.Move{}
	}

	return moves, nil
}

// makeBotTurns - a bot without legal moves keeps the turn and the game waits.
func (that *gamePlayService) makeBotTurns(game *entity.Game) {
	log := that.logger.With("method", "makeBotTurns", "gameID", game.ID)

	for game.IsBotTurn() {
		move, err := that.botService.ChooseMove(game)
		if errors.Is(err, apperror.ErrNoAvailableMoves) {
			log.Info("bot has no legal moves", "bot", game.Bot.String())
			return
		}
		if err != nil {
			log.Error("bot failed to choose a move", "error", err)
			return
		}

		if err = playMove(game, move); err != nil {
			log.Error("bot failed to make turn", "error", err)
			return
		}

		log.Debug("bot made turn", "piece", move.Piece.Name, "position", move.Position.String())
	}
}

// playMove - applies an already legal move and moves the game forward.
func playMove(game *entity.Game, move entity.Move) error {
	inventory, err := game.Inventory(move.Player)
	if err != nil {
		return err
	}

	if err = blokus.Apply(game.Board, inventory, move.Piece, move.Position, move.Player); err != nil {
		return err
	}

	game.Moves++

	if blokus.IsGameOver(game.Inventories) {
		game.Finish(blokus.DetermineOutcome(game.Inventories))
		return nil
	}

	game.AdvanceTurn()

	return nil
}
