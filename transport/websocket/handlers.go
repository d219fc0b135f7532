package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

var publicErrors = []error{
	apperror.ErrGameNotFound,
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrBotTurn,
	apperror.ErrIllegalMove,
	apperror.ErrInvalidGameType,
	entity.ErrInvalidPlayer,
	entity.ErrInvalidPiece,
}

func (that *Server) handleNewGame(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, "invalid payload")
	}

	if payload.Type == "" {
		payload.Type = entity.LocalType
	}

	game, err := that.gameUseCase.NewGame(ctx, payload.Type, payload.Players)
	if err != nil {
		return that.sendUseCaseError(c, msg.Action, err)
	}

	that.subscribe(c, game.ID)

	return that.send(c, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameState(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, "invalid payload")
	}

	game, err := that.gameUseCase.GetGame(ctx, payload.GameID)
	if err != nil {
		return that.sendUseCaseError(c, msg.Action, err)
	}

	that.subscribe(c, game.ID)

	return that.send(c, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, "invalid payload")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payload.GameID, payload.Player, payload.Piece, payload.position())
	if err != nil {
		return that.sendUseCaseError(c, msg.Action, err)
	}

	that.subscribe(c, game.ID)

	if err = that.send(c, msg.Action, ResponsePayload{Game: game}); err != nil {
		return err
	}

	that.broadcast(c, game)

	return nil
}

func (that *Server) handleGameCheck(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, "invalid payload")
	}

	verdict, err := that.gameUseCase.Check(ctx, payload.GameID, payload.Player, payload.Piece, payload.position())
	if err != nil {
		return that.sendUseCaseError(c, msg.Action, err)
	}

	return that.send(c, msg.Action, ResponsePayload{Verdict: newVerdict(verdict)})
}

func (that *Server) handleGameMoves(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, "invalid payload")
	}

	moves, err := that.gameUseCase.LegalMoves(ctx, payload.GameID, payload.Player)
	if err != nil {
		return that.sendUseCaseError(c, msg.Action, err)
	}

	return that.send(c, msg.Action, ResponsePayload{Moves: moves})
}

// sendUseCaseError - domain errors are shown as is, anything else is logged and hidden.
func (that *Server) sendUseCaseError(c *client, action string, err error) error {
	for _, public := range publicErrors {
		if errors.Is(err, public) {
			return that.sendError(c, err.Error())
		}
	}

	that.logger.Error("failed to handle action", "action", action, "error", err)

	return that.sendError(c, "internal server error")
}
