package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrAlreadyProcessing = errors.New("payment already in progress")
	ErrSessionClosed     = errors.New("session closed")
)
