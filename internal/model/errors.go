package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomAlreadyExists      = errors.New("room already exists")
	ErrRoomNotFound           = errors.New("room not found")
	ErrRoomFull               = errors.New("room is full")
	ErrWrongPassword          = errors.New("incorrect password")
	ErrNotOwner               = errors.New("only the room owner can modify room settings")
	ErrCapacityBelowOccupancy = errors.New("cannot set max players lower than current player count")

	// Player errors
	ErrPlayerNotRegistered = errors.New("player must register before joining a room")
	ErrPlayerNotFound      = errors.New("player not found")

	// Vote errors
	ErrInvalidVote = errors.New("invalid vote: must be one of S, M, L, XL")
)
