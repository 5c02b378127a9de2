package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

// Fixed mark assignment for interactive play: the human is O, the agent is X.
const (
	HumanMark = entity.PlayerO
	AgentMark = entity.PlayerX
)

type MatchUseCase interface {
	NewMatch(humanFirst bool) *entity.Game
	HumanTurn(game *entity.Game, cell int) error
	AgentTurn(game *entity.Game) (int, error)
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type matchUseCase struct {
	botService botService
}

func NewMatchUseCase(botService botService) MatchUseCase {
	return &matchUseCase{
		botService: botService,
	}
}

// NewMatch - starts a match between the human and the agent.
func (that *matchUseCase) NewMatch(humanFirst bool) *entity.Game {
	firstMark := AgentMark
	if humanFirst {
		firstMark = HumanMark
	}

	return entity.NewGame(firstMark,
		entity.NewHumanPlayer("you", HumanMark),
		entity.NewBotPlayer(AgentMark),
	)
}

// HumanTurn - applies the human's move. Validation failures surface as
// apperror sentinels so the caller can re-prompt.
func (that *matchUseCase) HumanTurn(game *entity.Game, cell int) error {
	if err := game.MakeTurn(HumanMark, cell); err != nil {
		return fmt.Errorf("human turn failed: %w", err)
	}

	return nil
}

// AgentTurn - lets the agent play its greedy move and returns the cell it
// chose.
func (that *matchUseCase) AgentTurn(game *entity.Game) (int, error) {
	cell, err := that.botService.MakeTurn(game)
	if err != nil {
		return 0, fmt.Errorf("agent turn failed: %w", err)
	}

	return cell, nil
}
