package entity

import (
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	StatusOngoing  = "in_progress"
	StatusWon      = "won"
	StatusDraw     = "draw"

	PlayerBlack = "black"
	PlayerWhite = "white"
	PlayerDraw  = "draw"

	EmptyCell = ""
)

// Cell is one grid position in a game view.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Game is what the presentation layer renders after every request.
type Game struct {
	ID          string     `json:"id"`
	Size        int        `json:"size"`
	CellSize    float64    `json:"cell_size"`
	Board       [][]string `json:"board"`
	Turn        string     `json:"player_turn,omitempty"`
	Status      string     `json:"status"`
	Winner      string     `json:"winner,omitempty"`
	Moves       int        `json:"moves"`
	WinningLine []Cell     `json:"winning_line,omitempty"`
}

func NewGame(id string, cellSize float64, game *gomoku.Game) *Game {
	rows := game.Rows()
	board := make([][]string, len(rows))
	for r, row := range rows {
		board[r] = make([]string, len(row))
		for c, cell := range row {
			board[r][c] = cell.String()
		}
	}

	view := &Game{
		ID:       id,
		Size:     game.Size(),
		CellSize: cellSize,
		Board:    board,
		Status:   game.Result().String(),
		Winner:   game.Winner().String(),
		Moves:    game.Moves(),
	}

	if !game.IsFinished() {
		view.Turn = game.Turn().String()
	}

	for _, move := range game.WinningLine() {
		view.WinningLine = append(view.WinningLine, Cell{Col: move.Col, Row: move.Row})
	}

	return view
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// Outcome is the answer to one placement request.
type Outcome struct {
	Kind    string `json:"kind"`
	Reason  string `json:"reason,omitempty"`
	Col     int    `json:"col"`
	Row     int    `json:"row"`
	Player  string `json:"player,omitempty"`
	Message string `json:"message"`
	Game    *Game  `json:"game"`
}

func NewOutcome(outcome gomoku.Outcome, game *Game) *Outcome {
	view := &Outcome{
		Kind:    outcome.Kind.String(),
		Col:     outcome.Col,
		Row:     outcome.Row,
		Player:  outcome.Player.String(),
		Message: outcome.Message(),
		Game:    game,
	}

	if outcome.Reason != nil {
		view.Reason = outcome.Reason.Error()
	}

	return view
}

// Result is the record of a finished game kept in the results ledger.
type Result struct {
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner"`
	Size       int       `json:"size"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(id string, game *gomoku.Game, finishedAt time.Time) *Result {
	winner := PlayerDraw
	if game.Result() == gomoku.Won {
		winner = game.Winner().String()
	}

	return &Result{
		GameID:     id,
		Winner:     winner,
		Size:       game.Size(),
		Moves:      game.Moves(),
		FinishedAt: finishedAt,
	}
}

// Tally counts finished games by winner.
type Tally struct {
	Black int64 `json:"black"`
	White int64 `json:"white"`
	Draw  int64 `json:"draw"`
}
