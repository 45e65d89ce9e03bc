package game

import "errors"

// Engine errors. Controllers map these onto HTTP status codes; the engine
// never retries anything on its own.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room is not accepting players")
	ErrRoomFull            = errors.New("room is full")
	ErrInsufficientBalance = errors.New("insufficient token balance")
	ErrUnauthorized        = errors.New("caller may not start the game")
	ErrInvalidState        = errors.New("operation not valid in current room state")
	ErrAlreadySettled      = errors.New("room already has a winner")
	ErrGameExhausted       = errors.New("all numbers have been drawn")
	ErrCardNotOwned        = errors.New("card does not belong to caller in this room")
)
