// Package services selects between the enhanced and heuristic variants of
// the optional analysis capabilities (grammar checking, sentiment scoring,
// sentence embeddings).
//
// Each configured capability is held by a handle that is constructed at
// most once, on first use or on Warm. A construction failure or a failed
// call disables the capability for the rest of the process, after which the
// analyzers use their fallbacks. A call that fails only because its caller
// gave up does not count.
package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// ErrUnavailable is returned by a disabled service.
var ErrUnavailable = errors.New("service unavailable")

// State describes a capability for health reporting.
type State string

const (
	StateUnconfigured State = "unconfigured"
	StatePending      State = "pending"
	StateEnhanced     State = "enhanced"
	StateFallback     State = "fallback"
)

type handle[T any] struct {
	name  string
	build func(ctx context.Context) (T, error)
	log   logrus.FieldLogger

	once  sync.Once
	val   T
	built atomic.Bool
	down  atomic.Bool
}

func newHandle[T any](name string, log logrus.FieldLogger, build func(context.Context) (T, error)) *handle[T] {
	return &handle[T]{name: name, build: build, log: log}
}

func (h *handle[T]) get(ctx context.Context) (T, error) {
	h.once.Do(func() {
		// a cancelled request must not poison the process-wide handle
		v, err := h.build(context.WithoutCancel(ctx))
		if err != nil {
			h.disable(err)
			h.built.Store(true)
			return
		}
		h.val = v
		h.built.Store(true)
		h.log.WithField("service", h.name).Info("optional service ready")
	})
	if h.down.Load() {
		var zero T
		return zero, ErrUnavailable
	}
	return h.val, nil
}

// fail records an invocation failure. Errors caused by the caller's own
// cancellation or deadline leave the service enabled.
func (h *handle[T]) fail(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}
	h.disable(err)
}

func (h *handle[T]) disable(err error) {
	if h.down.CompareAndSwap(false, true) {
		h.log.WithFields(logrus.Fields{
			"service": h.name,
			"error":   err,
		}).Warn("optional service disabled, using fallback")
	}
}

func (h *handle[T]) state() State {
	switch {
	case h.down.Load():
		return StateFallback
	case h.built.Load():
		return StateEnhanced
	default:
		return StatePending
	}
}
