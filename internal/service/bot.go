package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

// policy - the slice of the trained agent the bot needs.
type policy interface {
	BestMove(board entity.Board, mark string) (int, error)
}

type botService struct {
	policy policy
}

func NewBotService(policy policy) BotService {
	return &botService{
		policy: policy,
	}
}

// MakeTurn - plays the agent's greedy move for the bot player and returns the
// chosen cell.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if game.Board.IsFull() {
		return 0, ErrNoAvailableMoves
	}

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return 0, ErrBotNotFound
	}

	chosenCell, err := that.policy.BestMove(game.Board, botPlayer.Mark)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosenCell, nil
}
