package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy", func(t *testing.T) {
		// Given: a stored game with one move
		gameRepo := NewMemoryGameRepository()
		game := entity.NewGame("g1")
		require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 0, 0))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps playing on its own copy without saving
		require.NoError(t, game.MakeTurn(tictactoe.PlayerO, 1, 1))

		// Then: the stored game still holds only the first move
		stored, err := gameRepo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Len(t, stored.Moves, 1)
		assert.True(t, stored.Board.At(1, 1).IsEmpty())
		assert.Equal(t, tictactoe.PlayerO, stored.Turn)
	})

	t.Run("Returns ErrGameNotFound for unknown id", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		game, err := gameRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("Deletes a stored game", func(t *testing.T) {
		// Given: a stored game
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("g2")))

		// When: it is deleted twice
		first := gameRepo.DeleteByID(ctx, "g2")
		second := gameRepo.DeleteByID(ctx, "g2")

		// Then: only the first delete succeeds
		require.NoError(t, first)
		require.ErrorIs(t, second, apperror.ErrGameNotFound)
	})
}
