package entity

// State cell symbols. They double as the persisted wire alphabet: changing
// them invalidates previously stored value tables.
const (
	SelfCell  = 'P' // cell held by the acting player
	EnemyCell = 'E' // cell held by the opponent
	FreeCell  = '_'
)

// State - a canonical, perspective-relative board key. Each of the 9 bytes is
// SelfCell, EnemyCell or FreeCell from the acting player's point of view, so
// one value table serves both sides of self-play.
type State string

// EncodeState - encodes a board from the given player's perspective. Encoding
// the same board for the opposite mark swaps every SelfCell/EnemyCell and
// leaves FreeCell untouched.
func EncodeState(board Board, mark string) State {
	opponent := OpponentOf(mark)

	encoded := make([]byte, len(board))
	for i, cell := range board {
		switch cell {
		case mark:
			encoded[i] = SelfCell
		case opponent:
			encoded[i] = EnemyCell
		default:
			encoded[i] = FreeCell
		}
	}

	return State(encoded)
}

// Transition - one move of a self-play episode. Next is the post-move state
// from the opponent's perspective and stays empty on terminal transitions.
type Transition struct {
	State  State
	Action int
	Reward float64
	Next   State
	Done   bool
}
