package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	bannerWidth  = 50
	rowSeparator = "----------------"
)

// RenderBoard writes the board with row and column indices.
func RenderBoard(w io.Writer, board tictactoe.Board) error {
	var sb strings.Builder

	sb.WriteString("\n   | 0 | 1 | 2 |\n")
	sb.WriteString(rowSeparator + "\n")

	for row := 0; row < tictactoe.Size; row++ {
		marks := make([]string, 0, tictactoe.Size)
		for col := 0; col < tictactoe.Size; col++ {
			marks = append(marks, cellSymbol(board.At(row, col)))
		}

		fmt.Fprintf(&sb, " %d | %s |\n", row, strings.Join(marks, " | "))
		sb.WriteString(rowSeparator + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func cellSymbol(cell tictactoe.Cell) string {
	if cell.IsEmpty() {
		return " "
	}
	return string(cell)
}

// DescribeOutcome returns the message announcing a finished game.
func DescribeOutcome(outcome tictactoe.Outcome) string {
	switch outcome.Status {
	case tictactoe.StatusWin:
		return fmt.Sprintf("Congratulations! Player %s wins!", outcome.Winner)
	case tictactoe.StatusDraw:
		return "Draw! The board is full!"
	default:
		return "The game is still in progress."
	}
}

func banner(title string) string {
	line := strings.Repeat("=", bannerWidth)
	pad := (bannerWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	return line + "\n" + strings.Repeat(" ", pad) + title + "\n" + line + "\n"
}

const rulesText = `1. The board is a 3x3 grid
2. Players take turns
3. The first player places X, the second places O
4. To move, enter two numbers separated by a space:
   - first number: row (0, 1, 2)
   - second number: column (0, 1, 2)
5. The first player to complete a line
   of 3 of their marks (horizontal,
   vertical or diagonal) wins
6. If every cell is filled and nobody
   has a line, the game is a draw
`

const introText = `
Rules:
- Players take turns placing X and O on a 3x3 board
- To move, enter two numbers: the row and the column
- For example: '0 1' is the first row, second column
- The first to get 3 of their marks in a row wins
`

// RenderRules writes the full rules screen.
func RenderRules(w io.Writer) error {
	_, err := io.WriteString(w, "\n"+banner("GAME RULES")+rulesText)
	return err
}
