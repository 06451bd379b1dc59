package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

var (
	affirmativeAnswers = []string{"yes", "y", "да", "д"}
	negativeAnswers    = []string{"no", "n", "нет", "н"}
)

// ParseMove reads "row col": exactly two whitespace separated integers.
// Range checks belong to the engine, so "5 -1" parses fine.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two numbers, got %d values", apperror.ErrMalformedInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q is not a number", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q is not a number", apperror.ErrMalformedInput, fields[1])
	}

	return row, col, nil
}

// ParseAnswer reads a yes/no answer in English or Russian, case-insensitive.
func ParseAnswer(line string) (bool, error) {
	answer := strings.ToLower(strings.TrimSpace(line))

	for _, yes := range affirmativeAnswers {
		if answer == yes {
			return true, nil
		}
	}

	for _, no := range negativeAnswers {
		if answer == no {
			return false, nil
		}
	}

	return false, fmt.Errorf("%w: %q is neither yes nor no", apperror.ErrMalformedInput, answer)
}
