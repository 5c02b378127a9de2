// Package cli implements the interactive terminal session against the
// trained agent. All malformed human input is absorbed here with a re-prompt
// and never reaches the core.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/usecase"
)

// match - the slice of the match use case the session drives.
type match interface {
	NewMatch(humanFirst bool) *entity.Game
	HumanTurn(game *entity.Game, cell int) error
	AgentTurn(game *entity.Game) (int, error)
}

type Session struct {
	logger *slog.Logger
	match  match
	in     *bufio.Reader
	out    io.Writer
}

func New(logger *slog.Logger, match match, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger: logger.With("component", "cli"),
		match:  match,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run - plays matches until the player declines a rematch or input ends.
func (that *Session) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		humanFirst, err := that.promptYesNo("Do you want to move first? (y/n): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		game := that.match.NewMatch(humanFirst)
		renderBoard(that.out, game.Board)

		if err = that.playMatch(game); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		again, err := that.promptYesNo("Play again? (y/n): ")
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (that *Session) playMatch(game *entity.Game) error {
	for game.IsOngoing() {
		if game.Turn == usecase.HumanMark {
			fmt.Fprintf(that.out, "Your turn (%s)\n", usecase.HumanMark)

			if err := that.humanTurn(game); err != nil {
				return err
			}
		} else {
			cell, err := that.match.AgentTurn(game)
			if err != nil {
				return fmt.Errorf("agent failed to move: %w", err)
			}

			fmt.Fprintf(that.out, "Agent turn (%s) -> %d\n", usecase.AgentMark, cell)
		}

		renderBoard(that.out, game.Board)
	}

	if game.IsTie() {
		fmt.Fprintln(that.out, "Draw")
	} else {
		fmt.Fprintf(that.out, "%s wins\n", game.Winner)
	}

	that.logger.Debug("match finished", "winner", game.Winner)

	return nil
}

// humanTurn - prompts for a cell index until a legal move is played.
func (that *Session) humanTurn(game *entity.Game) error {
	for {
		line, err := that.readLine("Enter an empty cell index 0-8: ")
		if err != nil {
			return err
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(that.out, "Please enter a number.")
			continue
		}

		err = that.match.HumanTurn(game, cell)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrInvalidCell):
			fmt.Fprintln(that.out, "The index must be between 0 and 8.")
		case errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintln(that.out, "That cell is taken, pick another one.")
		default:
			return fmt.Errorf("failed to apply move: %w", err)
		}
	}
}

func (that *Session) promptYesNo(prompt string) (bool, error) {
	line, err := that.readLine(prompt)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(line, "y"), nil
}

func (that *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	line, err := that.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
