package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrLevelOutOfRange  = errors.New("level out of range, must be between 1 and 200")
	ErrPoolTooSmall     = errors.New("character pool too small to build options")
	ErrDegeneratePool   = errors.New("character pool cannot produce any valid question")
	ErrLevelLocked      = errors.New("level not unlocked yet")
	ErrInvalidScore     = errors.New("correct count out of range")
)
