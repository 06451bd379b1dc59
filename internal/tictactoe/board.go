package tictactoe

const Size = 3

// Player is the mark a player puts on the board.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the player who moves after this one.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return string(that)
}

// Cell holds a single board position: empty or one of the player marks.
type Cell string

const (
	EmptyCell Cell = ""
	CellX     Cell = Cell(PlayerX)
	CellO     Cell = Cell(PlayerO)
)

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Player returns the mark stored in the cell, ok is false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return "", false
	}
}

// Board is a 3x3 grid indexed [row][col]. It is a value type, copying a Board copies every cell.
type Board [Size][Size]Cell

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell at (row, col). The caller must check InBounds first.
func (that Board) At(row, col int) Cell {
	return that[row][col]
}

func (that Board) Count(player Player) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == Cell(player) {
				count++
			}
		}
	}
	return count
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is the evaluated state of a board. Winner is set only for StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

// Move is a single placement of a mark.
type Move struct {
	Player Player `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
