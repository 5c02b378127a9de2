package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsTie returns true when the game finished without a winner", func(t *testing.T) {
		// Given: a finished tied game
		game := &Game{Status: StatusFinished, Winner: PlayerTie}

		// When: checking for a tie
		isTie := game.IsTie()

		// Then: it should return true
		assert.True(t, isTie)
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns PlayerX when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: Board{
				PlayerX, PlayerX, PlayerX,
				EmptyCell, EmptyCell, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerX as the winner
		assert.Equal(t, PlayerX, result)
	})

	t.Run("Returns PlayerTie when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerTie
		assert.Equal(t, PlayerTie, result)
	})

	t.Run("Returns EmptyCell when the game is ongoing", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return EmptyCell (game continues)
		assert.Equal(t, EmptyCell, result)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: Board{
				PlayerX, PlayerX, PlayerX,
				EmptyCell, EmptyCell, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should remain ongoing
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
		assert.Equal(t, PlayerO, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game where X moves first
		game := NewGame(PlayerX)

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The game state should reflect the turn and player turn should switch
		expectedGame := &Game{
			Board:  Board{PlayerX, "", "", "", "", "", "", "", ""},
			Turn:   PlayerO,
			Winner: "",
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame(PlayerX)
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// When: Player O tries to make a move to the same cell
		err = game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		expectedGame := &Game{
			Board:  Board{PlayerX, "", "", "", "", "", "", "", ""},
			Turn:   PlayerO,
			Winner: "",
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame(PlayerX)

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// And: The game state should remain unchanged
		expectedGame := &Game{
			Board:  Board{},
			Turn:   PlayerX,
			Winner: "",
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		// Given: A new game
		game := NewGame(PlayerX)

		// When: An invalid cell index is passed (greater than the range)
		err := game.MakeTurn(PlayerX, 20)

		// Then: An ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		// Given: A new game
		game := NewGame(PlayerX)

		// When: A negative cell index is passed
		err := game.MakeTurn(PlayerX, -1)

		// Then: An ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on Move After the Game Finished", func(t *testing.T) {
		// Given: a finished game
		game := NewGame(PlayerX)
		game.Status = StatusFinished

		// When: any player tries to move
		err := game.MakeTurn(PlayerX, 0)

		// Then: An ErrGameFinished error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning Move Finishes the Game", func(t *testing.T) {
		// Given: a game one move away from an X win on the top row
		game := NewGame(PlayerX)
		require.NoError(t, game.MakeTurn(PlayerX, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 3))
		require.NoError(t, game.MakeTurn(PlayerX, 1))
		require.NoError(t, game.MakeTurn(PlayerO, 4))

		// When: X completes the line
		err := game.MakeTurn(PlayerX, 2)

		// Then: the game is finished with X as the winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
	})
}

func TestGame_BotPlayer(t *testing.T) {
	t.Run("Returns the bot player when present", func(t *testing.T) {
		// Given: a match between a human and the bot
		game := NewGame(PlayerX, NewHumanPlayer("you", PlayerO), NewBotPlayer(PlayerX))

		// When: looking up the bot
		bot := game.BotPlayer()

		// Then: the bot and its mark are found
		require.NotNil(t, bot)
		assert.Equal(t, PlayerX, bot.Mark)
		assert.True(t, bot.IsBot())
	})

	t.Run("Returns nil without a bot", func(t *testing.T) {
		// Given: a match without a bot
		game := NewGame(PlayerX, NewHumanPlayer("you", PlayerO))

		// When / Then
		assert.Nil(t, game.BotPlayer())
	})
}
