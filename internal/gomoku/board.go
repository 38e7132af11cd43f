package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	DefaultBoardSize = 15
	DefaultCellSize  = 40

	// MaxBoardSize bounds the grid so a session never allocates more than
	// MaxBoardSize² cells.
	MaxBoardSize = 100

	// WinLength is the exact run length that wins; longer runs do not count.
	WinLength = 5
)

// Cell is the occupancy of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return ""
	}
}

// Player is the side to move. Black always moves first.
type Player = Cell

func (c Cell) opponent() Cell {
	if c == Black {
		return White
	}
	return Black
}

// Move is an accepted placement.
type Move struct {
	Col    int
	Row    int
	Player Player
}

// Board owns the occupancy grid and the turn. Cells never go back to Empty.
type Board struct {
	size  int
	cells []Cell
	turn  Player
	moves int
}

// ValidBoardSize reports whether size is in [1, MaxBoardSize].
func ValidBoardSize(size int) bool {
	return size > 0 && size <= MaxBoardSize
}

func NewBoard(size int) (*Board, error) {
	if !ValidBoardSize(size) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
		turn:  Black,
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Turn returns the player whose stone the next accepted placement will be.
func (that *Board) Turn() Player {
	return that.turn
}

// Moves returns the number of accepted placements.
func (that *Board) Moves() int {
	return that.moves
}

func (that *Board) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < that.size && row < that.size
}

// At returns the cell state; positions outside the grid read as Empty.
func (that *Board) At(col, row int) Cell {
	if !that.InBounds(col, row) {
		return Empty
	}
	return that.cells[that.index(col, row)]
}

func (that *Board) IsOccupied(col, row int) (bool, error) {
	if !that.InBounds(col, row) {
		return false, fmt.Errorf("%w: cell (%d, %d)", apperror.ErrOutOfBounds, col, row)
	}

	return that.cells[that.index(col, row)] != Empty, nil
}

// Place puts the current player's stone on (col, row) and passes the turn.
// A rejected placement leaves the board and the turn untouched.
func (that *Board) Place(col, row int) (Move, error) {
	occupied, err := that.IsOccupied(col, row)
	if err != nil {
		return Move{}, err
	}

	if occupied {
		return Move{}, fmt.Errorf("%w: cell (%d, %d)", apperror.ErrCellOccupied, col, row)
	}

	move := Move{Col: col, Row: row, Player: that.turn}
	that.cells[that.index(col, row)] = that.turn
	that.turn = that.turn.opponent()
	that.moves++

	return move, nil
}

func (that *Board) IsFull() bool {
	return that.moves == len(that.cells)
}

// Rows returns a copy of the grid indexed as [row][col].
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for row := range rows {
		rows[row] = make([]Cell, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}
	return rows
}

func (that *Board) index(col, row int) int {
	return row*that.size + col
}
