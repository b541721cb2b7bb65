package service

import "errors"

var (
	// ErrContextMissing means a resource operation ran before a handshake
	// stored the context fields it needs.
	ErrContextMissing = errors.New("session context missing: call POST /api/org/self first")

	// ErrProfileNotFound is returned when no NMS profile has been saved.
	ErrProfileNotFound = errors.New("nms profile not found")
)
