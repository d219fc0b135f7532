package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
	"github.com/rocketscienceinc/blokus-backend/internal/render"
)

type gameUseCase interface {
	NewGame(ctx context.Context, gameType string, players int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error)
	Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error)
	LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error)

	Results(ctx context.Context, limit int64) ([]entity.Result, error)
}

type createGameRequest struct {
	Type    string `json:"type"`
	Players int    `json:"players"`
}

type turnRequest struct {
	Player entity.Player `json:"player"`
	Piece  int           `json:"piece"`
	Row    int           `json:"row"`
	Col    int           `json:"col"`
}

func (that turnRequest) position() entity.Position {
	return entity.Position{Row: that.Row, Col: that.Col}
}

type checkResponse struct {
	Legal  bool          `json:"legal"`
	Reason blokus.Reason `json:"reason_code"`
	Detail string        `json:"reason"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type GameHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Delete(c *gin.Context)
	Board(c *gin.Context)

	MakeTurn(c *gin.Context)
	Check(c *gin.Context)
	LegalMoves(c *gin.Context)

	Results(c *gin.Context)
}

type gameHandler struct {
	logger   *slog.Logger
	useCase  gameUseCase
	renderer *render.Renderer
}

func NewGameHandler(logger *slog.Logger, useCase gameUseCase) GameHandler {
	return &gameHandler{
		logger:   logger.With("component", "rest"),
		useCase:  useCase,
		renderer: render.New(false),
	}
}

func (that *gameHandler) Create(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Type == "" {
		req.Type = entity.LocalType
	}

	game, err := that.useCase.NewGame(c.Request.Context(), req.Type, req.Players)
	if err != nil {
		that.fail(c, "Create", err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

func (that *gameHandler) Get(c *gin.Context) {
	game, err := that.useCase.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, "Get", err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *gameHandler) Delete(c *gin.Context) {
	if err := that.useCase.DeleteGame(c.Request.Context(), c.Param("id")); err != nil {
		that.fail(c, "Delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Board - plain text, one character per cell.
func (that *gameHandler) Board(c *gin.Context) {
	game, err := that.useCase.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, "Board", err)
		return
	}

	c.String(http.StatusOK, that.renderer.Board(game.Board))
}

func (that *gameHandler) MakeTurn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.useCase.MakeTurn(c.Request.Context(), c.Param("id"), req.Player, req.Piece, req.position())
	if err != nil {
		that.fail(c, "MakeTurn", err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// Check - dry run, the game is not changed.
func (that *gameHandler) Check(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	verdict, err := that.useCase.Check(c.Request.Context(), c.Param("id"), req.Player, req.Piece, req.position())
	if err != nil {
		that.fail(c, "Check", err)
		return
	}

	c.JSON(http.StatusOK, checkResponse{
		Legal:  verdict.Legal(),
		Reason: verdict.Reason,
		Detail: verdict.String(),
	})
}

func (that *gameHandler) LegalMoves(c *gin.Context) {
	player, err := strconv.Atoi(c.Query("player"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "player must be a number"})
		return
	}

	moves, err := that.useCase.LegalMoves(c.Request.Context(), c.Param("id"), entity.Player(player))
	if err != nil {
		that.fail(c, "LegalMoves", err)
		return
	}

	c.JSON(http.StatusOK, moves)
}

func (that *gameHandler) Results(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive number"})
			return
		}
		limit = parsed
	}

	results, err := that.useCase.Results(c.Request.Context(), limit)
	if err != nil {
		that.fail(c, "Results", err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (that *gameHandler) fail(c *gin.Context, method string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		c.JSON(status, errorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidGameType),
		errors.Is(err, entity.ErrInvalidPlayer),
		errors.Is(err, entity.ErrInvalidPiece):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrBotTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrIllegalMove):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
