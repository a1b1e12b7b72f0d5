package storage

import "errors"

var (
	// General errors
	ErrQueueNotFound = errors.New("ERR no such queue")
	ErrQueueExists   = errors.New("ERR queue already exists")
	ErrEmptyQueue    = errors.New("ERR queue is empty")

	// Allocation errors
	ErrOutOfMemory = errors.New("ERR could not allocate element")
)
