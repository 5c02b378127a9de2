package agent

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

// ErrNoLegalMoves - ChooseAction was called on a full board. This is a
// programming error on the caller's side and is never recovered.
var ErrNoLegalMoves = errors.New("no legal moves on the board")

// Default learning parameters.
const (
	DefaultAlpha   = 0.2
	DefaultGamma   = 0.9
	DefaultEpsilon = 0.2
)

// Agent - a tabular self-play learner. The value table is owned by exactly
// one Agent and is only mutated by Update during training; interactive play
// reads it through BestMove.
type Agent struct {
	values   Values
	alpha    float64
	gamma    float64
	epsilon  float64
	episodes int
	rng      *rand.Rand
}

// New - returns an agent with an empty value table. The random source drives
// exploration only, so a seeded rng gives reproducible training runs.
func New(alpha, gamma, epsilon float64, rng *rand.Rand) *Agent {
	return &Agent{
		values:  Values{},
		alpha:   alpha,
		gamma:   gamma,
		epsilon: epsilon,
		rng:     rng,
	}
}

// Values - exposes the live value table, for persistence.
func (that *Agent) Values() Values {
	return that.values
}

// InstallValues - replaces the value table with a previously persisted one.
func (that *Agent) InstallValues(values Values) {
	that.values = values
}

// ChooseAction - picks a cell for mark on the given board and returns it with
// the state it was chosen against. With explore set, an epsilon draw picks a
// uniformly random legal move; otherwise the move is the first legal cell, in
// ascending order, maximizing the stored estimate. The fixed tie-break keeps
// greedy play deterministic.
func (that *Agent) ChooseAction(board entity.Board, mark string, explore bool) (int, entity.State, error) {
	state := entity.EncodeState(board, mark)

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, state, ErrNoLegalMoves
	}

	if explore && that.rng.Float64() < that.epsilon {
		return moves[that.rng.Intn(len(moves))], state, nil
	}

	best := moves[0]
	bestValue := that.values.Get(state, best)
	for _, move := range moves[1:] {
		if value := that.values.Get(state, move); value > bestValue {
			best = move
			bestValue = value
		}
	}

	return best, state, nil
}

// BestMove - the greedy move for interactive play; no exploration, no
// learning.
func (that *Agent) BestMove(board entity.Board, mark string) (int, error) {
	move, _, err := that.ChooseAction(board, mark, false)
	if err != nil {
		return 0, fmt.Errorf("failed to choose move: %w", err)
	}

	return move, nil
}

// Update - applies one temporal-difference step. Terminal transitions take
// the raw reward as target; non-terminal ones subtract the discounted best
// value of next, because next is encoded from the opponent's perspective and
// whatever the opponent can achieve is a cost to the mover.
func (that *Agent) Update(state entity.State, action int, reward float64, next entity.State, done bool) {
	old := that.values.Get(state, action)

	target := reward
	if !done {
		target = reward - that.gamma*that.values.BestValue(next)
	}

	that.values.Set(state, action, old+that.alpha*(target-old))
}

// Stats - self-play outcome counts for one trained span of episodes.
type Stats struct {
	XWins int
	OWins int
	Draws int
}

// Episodes - the number of episodes the stats cover.
func (that Stats) Episodes() int {
	return that.XWins + that.OWins + that.Draws
}

// Train - runs the given number of self-play episodes, updating the value
// table after every move. The first mover alternates on a counter that
// persists across calls, so chunked training keeps the same parity as one
// long run.
func (that *Agent) Train(episodes int) (Stats, error) {
	var stats Stats

	for i := 0; i < episodes; i++ {
		firstMark := entity.PlayerX
		if that.episodes%2 != 0 {
			firstMark = entity.PlayerO
		}
		that.episodes++

		_, winner, err := that.playEpisode(firstMark)
		if err != nil {
			return stats, fmt.Errorf("episode %d failed: %w", that.episodes, err)
		}

		switch winner {
		case entity.PlayerX:
			stats.XWins++
		case entity.PlayerO:
			stats.OWins++
		default:
			stats.Draws++
		}
	}

	return stats, nil
}

// playEpisode - plays one full self-play game from an empty board, applying a
// TD update after every move. It returns the episode's transitions and the
// winning mark, EmptyCell for a draw.
func (that *Agent) playEpisode(firstMark string) ([]entity.Transition, string, error) {
	var board entity.Board
	var transitions []entity.Transition

	mark := firstMark
	for {
		action, state, err := that.ChooseAction(board, mark, true)
		if err != nil {
			return transitions, entity.EmptyCell, fmt.Errorf("failed to choose action: %w", err)
		}

		board[action] = mark

		winner := board.Winner()
		done := winner != entity.EmptyCell || board.IsFull()

		// a draw and an ordinary move both reward 0.0; losses are only
		// penalized through the opponent's bootstrap at the prior step
		reward := 0.0
		if winner == mark {
			reward = 1.0
		}

		if done {
			that.Update(state, action, reward, "", true)
			transitions = append(transitions, entity.Transition{
				State:  state,
				Action: action,
				Reward: reward,
				Done:   true,
			})

			return transitions, winner, nil
		}

		next := entity.EncodeState(board, entity.OpponentOf(mark))
		that.Update(state, action, reward, next, false)
		transitions = append(transitions, entity.Transition{
			State:  state,
			Action: action,
			Reward: reward,
			Next:   next,
		})

		mark = entity.OpponentOf(mark)
	}
}
