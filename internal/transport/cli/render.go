package cli

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const rowSeparator = "--+---+--"

// renderBoard - prints the board as a 3x3 grid. Empty cells show their index
// so the player can see what to type.
func renderBoard(w io.Writer, board entity.Board) {
	cells := make([]string, len(board))
	for i, cell := range board {
		switch cell {
		case entity.PlayerX:
			cells[i] = aurora.Blue(entity.PlayerX).String()
		case entity.PlayerO:
			cells[i] = aurora.Green(entity.PlayerO).String()
		default:
			cells[i] = aurora.Gray(11, fmt.Sprintf("%d", i)).String()
		}
	}

	fmt.Fprintln(w, rowSeparator)
	for row := 0; row < len(board); row += 3 {
		fmt.Fprintf(w, "%s | %s | %s\n", cells[row], cells[row+1], cells[row+2])
		fmt.Fprintln(w, rowSeparator)
	}
}
