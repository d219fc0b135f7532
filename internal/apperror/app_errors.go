package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameNotFound     = errors.New("game not found")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidGameType  = errors.New("invalid game type")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrBotTurn          = errors.New("it's the bot's turn")
)
