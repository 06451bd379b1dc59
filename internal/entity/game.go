package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one session of play: the board, whose turn it is and how it ended.
type Game struct {
	ID      string            `json:"id"`
	Board   tictactoe.Board   `json:"board"`
	Turn    tictactoe.Player  `json:"player_turn,omitempty"`
	Outcome tictactoe.Outcome `json:"outcome"`
	Moves   []tictactoe.Move  `json:"moves,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Board:   tictactoe.NewGame(),
		Turn:    tictactoe.PlayerX,
		Outcome: tictactoe.InProgress(),
	}
}

// MakeTurn applies the move for the player whose turn it is. The game is left unchanged on error.
func (that *Game) MakeTurn(player tictactoe.Player, row, col int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.ApplyMove(that.Board, row, col, player)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board
	that.Moves = append(that.Moves, tictactoe.Move{Player: player, Row: row, Col: col})

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Outcome = tictactoe.Evaluate(that.Board)

	if that.Outcome.IsTerminal() {
		that.Turn = ""
		return
	}

	// after a move the turn always goes to the mark that has placed fewer pieces
	if that.Board.Count(tictactoe.PlayerX) > that.Board.Count(tictactoe.PlayerO) {
		that.Turn = tictactoe.PlayerO
	} else {
		that.Turn = tictactoe.PlayerX
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Outcome.Status == tictactoe.StatusInProgress
}

// Winner returns the winning mark, ok is false for a draw or an unfinished game.
func (that *Game) Winner() (tictactoe.Player, bool) {
	if that.Outcome.Status != tictactoe.StatusWin {
		return "", false
	}
	return that.Outcome.Winner, true
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameStatus, that.Outcome.Status)
	}
}
