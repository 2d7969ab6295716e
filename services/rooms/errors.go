package rooms

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room full")
	ErrInvalidSettings   = errors.New("invalid room settings")
	ErrInsufficientCards = errors.New("not enough cards for the requested draw")
)
