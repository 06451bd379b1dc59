// Package console is the text front end of the game: the menu, the move prompts and the board display.
// It owns all parsing and formatting and talks to the game only through typed operations.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type gameManager interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string) error
}

// maxLineLength caps a single input line; longer lines are discarded as malformed.
const maxLineLength = 1024

type inputLine struct {
	text string
	err  error
}

type Console struct {
	logger *slog.Logger

	in    *bufio.Reader
	lines <-chan inputLine
	out   io.Writer

	games gameManager
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, games gameManager) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewReader(in),
		out:    out,
		games:  games,
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)

	that.lines = that.readLines(stop)

	for ctx.Err() == nil {
		that.print("\n" + banner("TIC-TAC-TOE") + "1. Start a new game\n2. Game rules\n3. Exit\n")

		choice, err := that.prompt(ctx, "\nChoose an action (1-3): ")
		switch {
		case isInterrupt(err):
			that.print("\nGoodbye!\n")
			return nil
		case errors.Is(err, apperror.ErrMalformedInput):
			choice = ""
		case err != nil:
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err = that.playGame(ctx); err != nil {
				if isInterrupt(err) {
					that.print("\n\nGame interrupted. Goodbye!\n")
					return nil
				}
				return err
			}

			again, err := that.askPlayAgain(ctx)
			if err != nil {
				if isInterrupt(err) {
					that.print("\nGoodbye!\n")
					return nil
				}
				return err
			}

			if !again {
				that.print("Thanks for playing! Goodbye!\n")
				return nil
			}
		case "2":
			if err = RenderRules(that.out); err != nil {
				return fmt.Errorf("failed to render rules: %w", err)
			}

			_, err = that.prompt(ctx, "\nPress Enter to continue...")
			switch {
			case isInterrupt(err):
				that.print("\nGoodbye!\n")
				return nil
			case err != nil && !errors.Is(err, apperror.ErrMalformedInput):
				return err
			}
		case "3":
			that.print("Goodbye!\n")
			return nil
		default:
			that.print("Invalid choice! Please enter 1, 2 or 3.\n")
		}
	}

	return nil
}

func (that *Console) playGame(ctx context.Context) error {
	game, err := that.games.CreateGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log := that.logger.With("method", "playGame", "gameID", game.ID)
	log.Debug("game started")

	that.print(banner("WELCOME TO TIC-TAC-TOE!") + introText + strings.Repeat("=", bannerWidth) + "\n")
	if err = RenderBoard(that.out, game.Board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	for !game.IsFinished() {
		if err = ctx.Err(); err != nil {
			that.abandon(ctx, game.ID)
			return err
		}

		line, err := that.prompt(ctx, fmt.Sprintf("\nPlayer %s, enter your move (row col, e.g. '0 1'): ", game.Turn))
		if err != nil && !errors.Is(err, apperror.ErrMalformedInput) {
			that.abandon(ctx, game.ID)
			return err
		}

		var row, col int
		if err == nil {
			row, col, err = ParseMove(line)
		}
		if err != nil {
			log.Debug("malformed move", "input", line, "error", err)
			that.print("Error: enter two numbers separated by a space (e.g. '0 1')!\n")
			continue
		}

		next, err := that.games.MakeTurn(ctx, game.ID, row, col)
		switch {
		case errors.Is(err, apperror.ErrOutOfBounds):
			that.print("Error: coordinates must be between 0 and 2!\n")
			continue
		case errors.Is(err, apperror.ErrCellOccupied):
			that.print("Error: this cell is already occupied!\n")
			continue
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}

		game = next
		if err = RenderBoard(that.out, game.Board); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}
	}

	that.print("\n" + DescribeOutcome(game.Outcome) + "\n")

	return nil
}

func (that *Console) askPlayAgain(ctx context.Context) (bool, error) {
	for {
		line, err := that.prompt(ctx, "\nPlay again? (yes/no): ")
		if errors.Is(err, apperror.ErrMalformedInput) {
			that.print("Please enter 'yes' or 'no'\n")
			continue
		}
		if err != nil {
			return false, err
		}

		again, err := ParseAnswer(line)
		if err != nil {
			that.print("Please enter 'yes' or 'no'\n")
			continue
		}

		return again, nil
	}
}

func (that *Console) abandon(ctx context.Context, gameID string) {
	if err := that.games.AbandonGame(context.WithoutCancel(ctx), gameID); err != nil {
		that.logger.Warn("failed to abandon game", "gameID", gameID, "error", err)
	}
}

// prompt writes the text and waits for one line. It returns io.EOF once the input is exhausted
// and the context error when ctx is canceled first.
func (that *Console) prompt(ctx context.Context, text string) (string, error) {
	that.print(text)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// readLines feeds input lines to prompt until the input fails or stop is closed.
// Reads block, so they run aside and a canceled context can still end a prompt.
func (that *Console) readLines(stop <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		for {
			text, err := that.readLine()
			if errors.Is(err, io.EOF) {
				return
			}

			select {
			case lines <- inputLine{text: text, err: err}:
			case <-stop:
				return
			}

			if err != nil && !errors.Is(err, apperror.ErrMalformedInput) {
				return
			}
		}
	}()

	return lines
}

// readLine reads up to the next newline. A line over maxLineLength is drained and reported as ErrMalformedInput.
func (that *Console) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, err := that.in.ReadSlice('\n')

		if !tooLong {
			if len(line)+len(chunk) > maxLineLength+len("\r\n") {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 && !tooLong {
				return "", io.EOF
			}
		} else if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		break
	}

	if tooLong {
		that.logger.Debug("input line too long", "limit", maxLineLength)
		return "", fmt.Errorf("%w: line longer than %d bytes", apperror.ErrMalformedInput, maxLineLength)
	}

	return strings.TrimRight(string(line), "\r\n"), nil
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
