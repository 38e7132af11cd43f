package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
)

func TestResultRepository_Record(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: a finished game won by Black
	result := &entity.Result{
		GameID:     "123",
		Winner:     entity.PlayerBlack,
		Size:       15,
		Moves:      9,
		FinishedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}

	// When: Record is called
	err := resultRepo.Record(ctx, result)

	// Then: no error should be returned, and the result is stored
	require.NoError(t, err)

	stored, err := resultRepo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, result.Winner, stored.Winner)
	assert.Equal(t, result.Moves, stored.Moves)
	assert.True(t, result.FinishedAt.Equal(stored.FinishedAt))
}

func TestResultRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		stored, err := resultRepo.GetByID(ctx, "9999999")

		// Then: an ErrResultNotFound error should be returned
		require.ErrorIs(t, err, ErrResultNotFound)
		assert.Empty(t, stored.GameID)
	})
}

func TestResultRepository_Tally(t *testing.T) {
	t.Run("Tally_Empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		tally, err := resultRepo.Tally(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Tally{}, tally)
	})

	t.Run("Tally_CountsEveryWinner", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: two Black wins, one White win and a draw
		for id, winner := range map[string]string{
			"a": entity.PlayerBlack,
			"b": entity.PlayerBlack,
			"c": entity.PlayerWhite,
			"d": entity.PlayerDraw,
		} {
			require.NoError(t, resultRepo.Record(ctx, &entity.Result{GameID: id, Winner: winner}))
		}

		// When: the tally is read
		tally, err := resultRepo.Tally(ctx)

		// Then: each side has its count
		require.NoError(t, err)
		assert.Equal(t, &entity.Tally{Black: 2, White: 1, Draw: 1}, tally)
	})
}
