package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found or is no longer active")
	ErrAlreadyParticipant = errors.New("user is already a participant in this session")
)
