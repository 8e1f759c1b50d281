package main

import (
	"errors"
	"net/http"
)

// Every failure a caller can see. The error strings are the wire-level error
// names, so err.Error() goes into the response body as-is.
var (
	ErrRoomNotFound      = errors.New("RoomNotFound")
	ErrRoomAlreadyExists = errors.New("RoomAlreadyExists")
	ErrRoomFull          = errors.New("RoomFull")
	ErrRoomAlreadyBooked = errors.New("RoomAlreadyBooked")
	ErrNotInRoom         = errors.New("NotInRoom")
	ErrNotOwner          = errors.New("NotOwner")
	ErrInvalidPrice      = errors.New("InvalidPrice")
	ErrInvalidCapacity   = errors.New("InvalidCapacity")
)

var errStatusCodes = map[error]int{
	ErrRoomNotFound:      http.StatusNotFound,
	ErrRoomAlreadyExists: http.StatusConflict,
	ErrRoomFull:          http.StatusConflict,
	ErrRoomAlreadyBooked: http.StatusConflict,
	ErrNotInRoom:         http.StatusConflict,
	ErrNotOwner:          http.StatusForbidden,
	ErrInvalidPrice:      http.StatusBadRequest,
	ErrInvalidCapacity:   http.StatusBadRequest,
}

func ErrorStatusCode(err error) int {
	for sentinel, code := range errStatusCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}
