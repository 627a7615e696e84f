package config

import "errors"

// Configuration validation errors returned by Root.Validate.
var (
	ErrNoServerAddr            = errors.New("invalid server address: must not be empty")
	ErrInvalidTimeout          = errors.New("invalid services timeout: must be positive")
	ErrUnknownSentimentBackend = errors.New("unknown sentiment backend")
	ErrInvalidWorkers          = errors.New("invalid watch workers: must be positive")
)
