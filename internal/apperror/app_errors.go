package apperror

import "errors"

var (
	ErrInvalidPlayer = errors.New("invalid player id")
	ErrInvalidMove   = errors.New("invalid move")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameFinished  = errors.New("game is already finished")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrBadInput      = errors.New("malformed move input")
	ErrQuit          = errors.New("player quit")
)
