package gomoku

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Result is the state of a game session.
type Result uint8

const (
	InProgress Result = iota
	Won
	Draw
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// OutcomeKind tells the presentation layer what happened to a placement request.
type OutcomeKind uint8

const (
	Rejected OutcomeKind = iota
	Accepted
	AcceptedAndWon
)

func (k OutcomeKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case AcceptedAndWon:
		return "accepted_and_won"
	default:
		return "rejected"
	}
}

// Outcome is the answer to one placement request. Reason is set only when
// Kind is Rejected and matches one of apperror.ErrOutOfBounds,
// apperror.ErrCellOccupied or apperror.ErrGameFinished.
type Outcome struct {
	Kind   OutcomeKind
	Reason error
	Col    int
	Row    int
	Player Player
}

func (that Outcome) IsAccepted() bool {
	return that.Kind != Rejected
}

// Message is a line of text the presentation layer can show as is.
func (that Outcome) Message() string {
	switch that.Kind {
	case AcceptedAndWon:
		return fmt.Sprintf("game over: %s wins", displayName(that.Player))
	case Accepted:
		return fmt.Sprintf("%s played (%d, %d)", displayName(that.Player), that.Col, that.Row)
	default:
		switch {
		case errors.Is(that.Reason, apperror.ErrCellOccupied):
			return "cell is already occupied"
		case errors.Is(that.Reason, apperror.ErrGameFinished):
			return "game is already finished"
		default:
			return "position is outside the board"
		}
	}
}

func displayName(p Player) string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "nobody"
	}
}

// Game is one play session: a board, the mapper used to read input positions
// and the result so far. It is not safe for concurrent use.
type Game struct {
	board  *Board
	mapper *Mapper
	result Result
	winner Player
	line   []Move
}

func NewGame(boardSize int, cellSize float64) (*Game, error) {
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}

	mapper, err := NewMapper(boardSize, cellSize)
	if err != nil {
		return nil, err
	}

	return &Game{board: board, mapper: mapper}, nil
}

// AttemptPlace maps an input position to a cell and places the current
// player's stone there.
func (that *Game) AttemptPlace(x, y float64) Outcome {
	if that.IsFinished() {
		return Outcome{Kind: Rejected, Reason: apperror.ErrGameFinished}
	}

	col, row, err := that.mapper.MapToCell(x, y)
	if err != nil {
		return Outcome{Kind: Rejected, Reason: err}
	}

	return that.PlaceCell(col, row)
}

// PlaceCell places the current player's stone on (col, row) and checks
// whether it completes a line.
func (that *Game) PlaceCell(col, row int) Outcome {
	if that.IsFinished() {
		return Outcome{Kind: Rejected, Reason: apperror.ErrGameFinished, Col: col, Row: row}
	}

	move, err := that.board.Place(col, row)
	if err != nil {
		return Outcome{Kind: Rejected, Reason: err, Col: col, Row: row}
	}

	outcome := Outcome{Kind: Accepted, Col: move.Col, Row: move.Row, Player: move.Player}

	if lines := WinningLines(that.board, move.Col, move.Row); len(lines) > 0 {
		that.result = Won
		that.winner = move.Player
		that.line = lines[0]
		outcome.Kind = AcceptedAndWon

		return outcome
	}

	if that.board.IsFull() {
		that.result = Draw
	}

	return outcome
}

func (that *Game) Result() Result {
	return that.result
}

func (that *Game) IsFinished() bool {
	return that.result != InProgress
}

// Winner is Empty unless the result is Won.
func (that *Game) Winner() Player {
	return that.winner
}

// WinningLine is the first completed line found by the last move, if any.
func (that *Game) WinningLine() []Move {
	return append([]Move(nil), that.line...)
}

func (that *Game) Turn() Player {
	return that.board.Turn()
}

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) Moves() int {
	return that.board.Moves()
}

func (that *Game) At(col, row int) Cell {
	return that.board.At(col, row)
}

func (that *Game) Rows() [][]Cell {
	return that.board.Rows()
}

func (that *Game) Mapper() *Mapper {
	return that.mapper
}
