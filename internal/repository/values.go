package repository

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
)

// ErrValuesNotFound - no value table is stored yet. Callers treat this as a
// signal to train from scratch, not as a failure.
var ErrValuesNotFound = errors.New("no stored values")

// ValuesRepository - persistence for the agent's value table. Load returns
// ErrValuesNotFound when nothing is stored; a present but undecodable store
// is a real error and propagates.
type ValuesRepository interface {
	Load(ctx context.Context) (agent.Values, error)
	Save(ctx context.Context, values agent.Values) error
}
