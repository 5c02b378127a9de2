package agent

import "github.com/rocketscienceinc/tictactoe-agent/internal/entity"

// ActionValues - learned estimates for the actions tried from one state.
type ActionValues map[int]float64

// Values - the value table: state key to per-action estimates. Entries exist
// only for genuinely visited state-action pairs, which keeps the persisted
// form bounded; everything absent reads as 0.0.
type Values map[entity.State]ActionValues

// Get - returns the stored estimate for (state, action), or 0.0 when the pair
// was never visited. Reading never mutates the table.
func (that Values) Get(state entity.State, action int) float64 {
	return that[state][action]
}

// Set - stores the estimate for (state, action), creating the inner map on
// first visit.
func (that Values) Set(state entity.State, action int, value float64) {
	actions, ok := that[state]
	if !ok {
		actions = ActionValues{}
		that[state] = actions
	}

	actions[action] = value
}

// BestValue - returns the maximum stored estimate for the state, or 0.0 when
// the state has no stored actions.
func (that Values) BestValue(state entity.State) float64 {
	best := 0.0
	first := true
	for _, value := range that[state] {
		if first || value > best {
			best = value
			first = false
		}
	}

	return best
}
