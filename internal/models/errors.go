package models

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid visit status transition")
	ErrInvalidStatus     = errors.New("unknown status value")
)
