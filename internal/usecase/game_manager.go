package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs games against the session store. A game lives in the store only
// while it is being played; it is removed as soon as it finishes or is abandoned.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

// CreateGame starts a new game with an empty board and X to move.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(that.newID())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.ID)

	return game, nil
}

// MakeTurn plays the next move of the game for whoever holds the turn.
// Rejected moves leave the stored game untouched and return it together with the error.
// A finished game is removed from the store and returned with its outcome.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(game.Turn, row, col); err != nil {
		log.Debug("turn rejected", "row", row, "col", col, "error", err)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Outcome.Status, "winner", game.Outcome.Winner, "moves", len(game.Moves))
		that.deleteGame(ctx, game)

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// GetGame returns the game currently stored under the id.
func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// AbandonGame drops an unfinished game, e.g. when the player quits mid-game.
func (that *GameManager) AbandonGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", gameID)

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Debug("game deleted")
}
