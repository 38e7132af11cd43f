package gomoku

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board with Black to move", func(t *testing.T) {
		// When: a default board is created
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		// Then: every cell is empty and Black moves first
		assert.Equal(t, DefaultBoardSize, board.Size())
		assert.Equal(t, Black, board.Turn())
		assert.Equal(t, 0, board.Moves())
		for row := 0; row < board.Size(); row++ {
			for col := 0; col < board.Size(); col++ {
				assert.Equal(t, Empty, board.At(col, row))
			}
		}
	})

	t.Run("Accepts the largest allowed size", func(t *testing.T) {
		board, err := NewBoard(MaxBoardSize)

		require.NoError(t, err)
		assert.Equal(t, MaxBoardSize, board.Size())
		_, err = board.Place(MaxBoardSize-1, MaxBoardSize-1)
		require.NoError(t, err)
	})

	t.Run("Rejects sizes above the maximum without allocating", func(t *testing.T) {
		for _, size := range []int{MaxBoardSize + 1, 100000, math.MaxInt32, math.MaxInt} {
			// When: a board is created with an oversized grid
			board, err := NewBoard(size)

			// Then: ErrInvalidBoardSize is returned instead of a broken board
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize, "size %d", size)
			assert.Nil(t, board)
		}
	})

	t.Run("Rejects non-positive sizes", func(t *testing.T) {
		for _, size := range []int{0, -1, -15} {
			// When: a board is created with an invalid size
			board, err := NewBoard(size)

			// Then: ErrInvalidBoardSize is returned
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_IsOccupied(t *testing.T) {
	board, err := NewBoard(DefaultBoardSize)
	require.NoError(t, err)

	_, err = board.Place(3, 4)
	require.NoError(t, err)

	t.Run("Reports placed and empty cells", func(t *testing.T) {
		occupied, err := board.IsOccupied(3, 4)
		require.NoError(t, err)
		assert.True(t, occupied)

		occupied, err = board.IsOccupied(4, 3)
		require.NoError(t, err)
		assert.False(t, occupied)
	})

	t.Run("Signals OutOfBounds outside the grid", func(t *testing.T) {
		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {15, 0}, {0, 15}, {100, 100}} {
			occupied, err := board.IsOccupied(cell[0], cell[1])

			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.False(t, occupied)
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Accepted placements alternate the turn", func(t *testing.T) {
		// Given: a new board
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		// When: three stones are placed
		first, err := board.Place(0, 0)
		require.NoError(t, err)
		second, err := board.Place(1, 0)
		require.NoError(t, err)
		third, err := board.Place(2, 0)
		require.NoError(t, err)

		// Then: the owners alternate starting with Black
		assert.Equal(t, Move{Col: 0, Row: 0, Player: Black}, first)
		assert.Equal(t, Move{Col: 1, Row: 0, Player: White}, second)
		assert.Equal(t, Move{Col: 2, Row: 0, Player: Black}, third)
		assert.Equal(t, White, board.Turn())
		assert.Equal(t, 3, board.Moves())
		assert.Equal(t, White, board.At(1, 0))
	})

	t.Run("Occupied cell is rejected without any change", func(t *testing.T) {
		// Given: a board where Black holds (7, 7)
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)
		_, err = board.Place(7, 7)
		require.NoError(t, err)
		before := board.Rows()

		// When: White tries the same cell
		_, err = board.Place(7, 7)

		// Then: ErrCellOccupied and the board and turn are unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Rows())
		assert.Equal(t, White, board.Turn())
		assert.Equal(t, 1, board.Moves())
	})

	t.Run("Out of range cell is rejected without any change", func(t *testing.T) {
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		_, err = board.Place(15, 3)

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, Black, board.Turn())
		assert.Equal(t, 0, board.Moves())
	})
}

func TestBoard_Rows(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)
	_, err = board.Place(2, 1)
	require.NoError(t, err)

	rows := board.Rows()

	assert.Equal(t, [][]Cell{
		{Empty, Empty, Empty},
		{Empty, Empty, Black},
		{Empty, Empty, Empty},
	}, rows)

	// the copy is detached from the board
	rows[0][0] = White
	assert.Equal(t, Empty, board.At(0, 0))
}
