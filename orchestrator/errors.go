package orchestrator

import "errors"

// ErrInvalidTranscript marks input that cannot be scored at all. Degraded
// optional services never produce an error.
var ErrInvalidTranscript = errors.New("invalid transcript")

// InputError reports why a transcript was rejected.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "invalid transcript: " + e.Reason }

func (e *InputError) Unwrap() error { return ErrInvalidTranscript }
