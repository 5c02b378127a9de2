package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// WinCombos - the 8 winning lines of a 3x3 board: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - a 3x3 playing field in row-major order. Marks are placed and never
// removed or changed within a single game.
type Board [9]string

// LegalMoves - returns the indices of every empty cell in ascending order.
// The order is relied on for deterministic tie-breaking in the policy.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Winner - returns the mark occupying a full winning line, or EmptyCell when
// no line is complete.
func (that Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull - reports whether no empty cell remains. A full board may or may not
// have a winner; full without a winner is a tie.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// OpponentOf - returns the other player's mark.
func OpponentOf(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
