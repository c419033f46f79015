package scheduler

import "errors"

var (
	// ErrArchiverNotRunning is returned when an operation requires a running archiver
	ErrArchiverNotRunning = errors.New("report archiver is not running")

	// ErrInvalidConfig is returned when the archiver configuration is invalid
	ErrInvalidConfig = errors.New("invalid archiver configuration")
)
