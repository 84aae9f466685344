package frontend

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Defaults
const (
	DefaultSaveDelay = 1500 * time.Millisecond
	DefaultStatusTTL = 3 * time.Second
)

// SavePolicy decides when a save clears dirtiness
type SavePolicy string

const (
	// SaveOptimistic marks the buffer clean as soon as the save is sent
	SaveOptimistic SavePolicy = "optimistic"
	// SaveConfirm waits for the backend to acknowledge the save
	SaveConfirm SavePolicy = "confirm"
)

// CorrelationMode decides how responses are matched to requests
type CorrelationMode string

const (
	// CorrelationLastWins routes every response by its command name
	CorrelationLastWins CorrelationMode = "last-wins"
	// CorrelationStrict drops responses whose id is unknown or superseded
	CorrelationStrict CorrelationMode = "strict"
)

// ParseSavePolicy validates a configured save policy
func ParseSavePolicy(s string) (SavePolicy, error) {
	switch SavePolicy(s) {
	case "", SaveOptimistic:
		return SaveOptimistic, nil
	case SaveConfirm:
		return SaveConfirm, nil
	default:
		return "", fmt.Errorf("unknown save policy %q (use optimistic or confirm)", s)
	}
}

// ParseCorrelationMode validates a configured correlation mode
func ParseCorrelationMode(s string) (CorrelationMode, error) {
	switch CorrelationMode(s) {
	case "", CorrelationLastWins:
		return CorrelationLastWins, nil
	case CorrelationStrict:
		return CorrelationStrict, nil
	default:
		return "", fmt.Errorf("unknown correlation mode %q (use last-wins or strict)", s)
	}
}

// Bridge delivers one serialized request envelope to the backend.
// Post must not block; the response arrives later through Controller.Receive.
type Bridge interface {
	Post(env []byte) error
}

// Prompter shows modal questions and alerts. Confirm may answer later;
// decide must then be called on the controller's event loop.
type Prompter interface {
	Confirm(message string, decide func(ok bool))
	Alert(message string)
}

// Scheduler runs fire once after d on the controller's event loop.
// The returned func cancels the timer if it has not fired yet.
type Scheduler interface {
	Schedule(d time.Duration, fire func()) (cancel func())
}

// Options tune a Controller
type Options struct {
	SaveDelay   time.Duration
	StatusTTL   time.Duration
	SavePolicy  SavePolicy
	Correlation CorrelationMode
	Logger      *slog.Logger
	// NewID returns a correlation id for each request
	NewID func() string
}

func (o Options) withDefaults() Options {
	if o.SaveDelay <= 0 {
		o.SaveDelay = DefaultSaveDelay
	}
	if o.StatusTTL <= 0 {
		o.StatusTTL = DefaultStatusTTL
	}
	if o.SavePolicy == "" {
		o.SavePolicy = SaveOptimistic
	}
	if o.Correlation == "" {
		o.Correlation = CorrelationLastWins
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}
