package gomoku

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Mapper converts continuous input positions into grid cells.
//
// Both axes share one origin: the board corner where cell (0, 0) starts. Cell
// (col, row) covers [col*CellSize, (col+1)*CellSize) horizontally and
// [row*CellSize, (row+1)*CellSize) vertically. Positions are bounds-checked in
// pixel space before they are divided.
type Mapper struct {
	boardSize int
	cellSize  float64
}

func NewMapper(boardSize int, cellSize float64) (*Mapper, error) {
	if !ValidBoardSize(boardSize) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, boardSize)
	}

	if !ValidCellSize(cellSize) {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidCellSize, cellSize)
	}

	return &Mapper{boardSize: boardSize, cellSize: cellSize}, nil
}

// ValidCellSize reports whether cellSize is a positive finite number.
func ValidCellSize(cellSize float64) bool {
	return cellSize > 0 && !math.IsInf(cellSize, 1)
}

// Extent is the side length of the board in input units.
func (that *Mapper) Extent() float64 {
	return float64(that.boardSize) * that.cellSize
}

// MapToCell returns the cell under (x, y). Positions outside
// [0, boardSize*cellSize) on either axis are rejected, never clamped.
func (that *Mapper) MapToCell(x, y float64) (int, int, error) {
	if !that.inExtent(x) || !that.inExtent(y) {
		return 0, 0, fmt.Errorf("%w: position (%g, %g)", apperror.ErrOutOfBounds, x, y)
	}

	col := int(math.Floor(x / that.cellSize))
	row := int(math.Floor(y / that.cellSize))

	// float rounding right below the far edge
	if col >= that.boardSize || row >= that.boardSize {
		return 0, 0, fmt.Errorf("%w: position (%g, %g)", apperror.ErrOutOfBounds, x, y)
	}

	return col, row, nil
}

// CellOrigin is the corner of (col, row) closest to the board origin.
func (that *Mapper) CellOrigin(col, row int) (float64, float64) {
	return float64(col) * that.cellSize, float64(row) * that.cellSize
}

// CellCenter is where a stone on (col, row) is drawn.
func (that *Mapper) CellCenter(col, row int) (float64, float64) {
	x, y := that.CellOrigin(col, row)
	return x + that.cellSize/2, y + that.cellSize/2
}

// NaN fails both comparisons.
func (that *Mapper) inExtent(v float64) bool {
	return v >= 0 && v < that.Extent()
}
