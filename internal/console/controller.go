// Package console drives a game from a line-oriented terminal session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
	"github.com/rocketscienceinc/blokus-backend/internal/render"
)

const quitCommand = "q"

const (
	promptPiece    = "Enter the index of the piece you want to play (0-based):"
	promptPosition = "Enter the row and column where you want to place the piece (separated by a space):"

	msgInvalidPiece    = "Invalid piece index, please try again."
	msgInvalidPosition = "Invalid input, please enter row and column separated by a space."
	msgInvalidMove     = "Invalid move, please try again."
	msgBotStuck        = "The bot has no legal moves left."
)

var errQuit = errors.New("quit")

type gameUseCase interface {
	NewGame(ctx context.Context, gameType string, players int) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error)
}

type Controller struct {
	logger   *slog.Logger
	useCase  gameUseCase
	renderer *render.Renderer

	in  *bufio.Scanner
	out io.Writer
}

func NewController(logger *slog.Logger, useCase gameUseCase, renderer *render.Renderer, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		logger:   logger.With("component", "console"),
		useCase:  useCase,
		renderer: renderer,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run - plays one game until it is finished or the player types q.
// The returned game is the last known state; it is still ongoing after a quit.
func (that *Controller) Run(ctx context.Context, gameType string, players int) (*entity.Game, error) {
	log := that.logger.With("method", "Run")

	game, err := that.useCase.NewGame(ctx, gameType, players)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log.Debug("game started", "gameID", game.ID, "type", game.Type, "players", game.Players)

	for game.IsOngoing() {
		if err = ctx.Err(); err != nil {
			return game, err
		}

		if game.IsBotTurn() {
			that.println(msgBotStuck)
			return game, nil
		}

		next, err := that.playTurn(ctx, game)
		if errors.Is(err, errQuit) {
			that.abandon(ctx, game)
			return game, nil
		}
		if err != nil {
			return game, err
		}

		game = next
	}

	that.print(that.renderer.Board(game.Board))
	that.println(game.Outcome.String())

	return game, nil
}

// playTurn - prompts the current player until the engine accepts a move.
func (that *Controller) playTurn(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	inventory, err := game.Inventory(game.Turn)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	that.print(that.renderer.Board(game.Board))
	that.println(fmt.Sprintf("Available pieces for %s:", game.Turn))
	that.print(that.renderer.Inventory(*inventory))

	for {
		pieceIndex, position, err := that.readMove(len(*inventory))
		if err != nil {
			return nil, err
		}

		next, err := that.useCase.MakeTurn(ctx, game.ID, game.Turn, pieceIndex, position)
		switch {
		case err == nil:
			return next, nil
		case errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, entity.ErrInvalidPiece):
			that.logger.Debug("move rejected", "gameID", game.ID, "player", game.Turn.String(), "error", err)
			that.println(msgInvalidMove)
		default:
			return nil, err
		}
	}
}

// readMove - keeps prompting until both answers are well formed.
func (that *Controller) readMove(pieces int) (int, entity.Position, error) {
	for {
		that.println(promptPiece)

		line, err := that.readLine()
		if err != nil {
			return 0, entity.Position{}, err
		}

		pieceIndex, err := strconv.Atoi(line)
		if err != nil || pieceIndex < 0 || pieceIndex >= pieces {
			that.println(msgInvalidPiece)
			continue
		}

		that.println(promptPosition)

		line, err = that.readLine()
		if err != nil {
			return 0, entity.Position{}, err
		}

		position, ok := parsePosition(line)
		if !ok {
			that.println(msgInvalidPosition)
			continue
		}

		return pieceIndex, position, nil
	}
}

// readLine - end of input counts as quitting.
func (that *Controller) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}

	line := strings.TrimSpace(that.in.Text())
	if strings.EqualFold(line, quitCommand) {
		return "", errQuit
	}

	return line, nil
}

func (that *Controller) abandon(ctx context.Context, game *entity.Game) {
	if err := that.useCase.DeleteGame(ctx, game.ID); err != nil {
		that.logger.Error("failed to delete abandoned game", "gameID", game.ID, "error", err)
	}
}

func (that *Controller) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Controller) println(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func parsePosition(line string) (entity.Position, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Position{}, false
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, false
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, false
	}

	return entity.Position{Row: row, Col: col}, true
}
