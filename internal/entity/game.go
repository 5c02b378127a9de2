package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game - one interactive match between the human and the agent.
type Game struct {
	Board   Board     `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    string    `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
}

// NewGame - returns a fresh match where firstMark moves first.
func NewGame(firstMark string, players ...*Player) *Game {
	return &Game{
		Board:   Board{},
		Turn:    firstMark,
		Status:  StatusOngoing,
		Players: players,
	}
}

// DetermineGameResult - returns the winning mark, PlayerTie when the board is
// full with no winner, or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() string {
	if winner := that.Board.Winner(); winner != EmptyCell {
		return winner
	}

	// the game will continue until all the squares are full
	if !that.Board.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}

// UpdateGameState - folds the board result into the match status.
func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins, or tie
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn - places playerMark on the given cell, flips the mover and updates
// the match status.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	that.Board[cell] = playerMark
	that.Turn = OpponentOf(playerMark)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsTie - true when the match finished with a full board and no winner.
func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}

// BotPlayer - returns the agent-controlled player, or nil when there is none.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}
