package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type position struct {
	row, col int
}

// WinLines lists every line that completes a game, in evaluation order:
// rows, then columns, then the main and the anti diagonal.
var WinLines = [8][3]position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// NewGame returns an empty board.
func NewGame() Board {
	return Board{}
}

// ApplyMove places the player's mark at (row, col) and returns the resulting board.
// The board passed in is never modified.
func ApplyMove(board Board, row, col int, player Player) (Board, error) {
	if err := validateMove(board, row, col, player); err != nil {
		return board, err
	}

	board[row][col] = Cell(player)

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board Board, row, col int, player Player) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !player.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if !board.At(row, col).IsEmpty() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// Evaluate reports whether the board is won, drawn or still in progress.
func Evaluate(board Board) Outcome {
	for _, line := range WinLines {
		a := board.At(line[0].row, line[0].col)
		b := board.At(line[1].row, line[1].col)
		c := board.At(line[2].row, line[2].col)

		if a.IsEmpty() || a != b || b != c {
			continue
		}

		if player, ok := a.Player(); ok {
			return Win(player)
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Draw()
	}

	return InProgress()
}
