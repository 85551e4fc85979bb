package service

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrSessionFinished = errors.New("session is finished")
)
