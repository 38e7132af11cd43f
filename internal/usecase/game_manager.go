package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type resultRepo interface {
	Record(ctx context.Context, result *entity.Result) error
	Tally(ctx context.Context) (*entity.Tally, error)
}

type session struct {
	game      *gomoku.Game
	touchedAt time.Time
}

// GameManager owns the live game sessions. Sessions are kept in memory only
// and dropped once untouched for settings.SessionTTL; finished games are
// written to the results ledger.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	settings   config.Game

	mu       sync.Mutex
	sessions map[string]*session

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, resultRepo resultRepo, settings config.Game) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
		settings:   settings,

		sessions: make(map[string]*session),

		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateGame starts a new session. A zero boardSize picks the configured size.
func (that *GameManager) CreateGame(_ context.Context, boardSize int) (*entity.Game, error) {
	if boardSize == 0 {
		boardSize = that.settings.BoardSize
	}

	game, err := gomoku.NewGame(boardSize, that.settings.CellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	id := that.newID()

	that.mu.Lock()
	that.sessions[id] = &session{game: game, touchedAt: that.now()}
	view := entity.NewGame(id, that.settings.CellSize, game)
	that.mu.Unlock()

	that.logger.Info("game created", "game_id", id, "board_size", boardSize)

	return view, nil
}

func (that *GameManager) GetGame(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGame(id)
	if err != nil {
		return nil, err
	}

	return entity.NewGame(id, that.settings.CellSize, game), nil
}

// AttemptPlace handles a raw input position from the presentation layer.
func (that *GameManager) AttemptPlace(ctx context.Context, id string, x, y float64) (*entity.Outcome, error) {
	return that.place(ctx, id, func(game *gomoku.Game) gomoku.Outcome {
		return game.AttemptPlace(x, y)
	})
}

// PlaceCell handles an input that already names a grid cell.
func (that *GameManager) PlaceCell(ctx context.Context, id string, col, row int) (*entity.Outcome, error) {
	return that.place(ctx, id, func(game *gomoku.Game) gomoku.Outcome {
		return game.PlaceCell(col, row)
	})
}

func (that *GameManager) DeleteGame(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	delete(that.sessions, id)
	that.logger.Info("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) Tally(ctx context.Context) (*entity.Tally, error) {
	tally, err := that.resultRepo.Tally(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

// EvictIdle drops every session untouched for at least SessionTTL and
// returns how many were dropped. A non-positive SessionTTL keeps everything.
func (that *GameManager) EvictIdle() int {
	if that.settings.SessionTTL <= 0 {
		return 0
	}

	deadline := that.now().Add(-that.settings.SessionTTL)

	that.mu.Lock()
	defer that.mu.Unlock()

	evicted := 0
	for id, s := range that.sessions {
		if s.touchedAt.After(deadline) {
			continue
		}

		delete(that.sessions, id)
		evicted++
	}

	return evicted
}

// RunJanitor evicts idle sessions every SweepInterval until ctx is done.
func (that *GameManager) RunJanitor(ctx context.Context) {
	if that.settings.SweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(that.settings.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := that.EvictIdle(); evicted > 0 {
				that.logger.Info("idle games evicted", "count", evicted)
			}
		}
	}
}

func (that *GameManager) place(ctx context.Context, id string, play func(*gomoku.Game) gomoku.Outcome) (*entity.Outcome, error) {
	log := that.logger.With("method", "place", "game_id", id)

	that.mu.Lock()
	game, err := that.getGame(id)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	wasFinished := game.IsFinished()
	outcome := play(game)
	view := entity.NewOutcome(outcome, entity.NewGame(id, that.settings.CellSize, game))
	justFinished := !wasFinished && game.IsFinished()

	var result *entity.Result
	if justFinished {
		result = entity.NewResult(id, game, that.now())
	}
	that.mu.Unlock()

	if !outcome.IsAccepted() {
		log.Debug("placement rejected", "reason", outcome.Reason)
		return view, nil
	}

	log.Debug("placement accepted", "col", outcome.Col, "row", outcome.Row, "player", outcome.Player.String())

	if result != nil {
		log.Info("game finished", "winner", result.Winner, "moves", result.Moves)
		that.recordResult(context.WithoutCancel(ctx), result)
	}

	return view, nil
}

// recordResult never fails the move that finished the game.
func (that *GameManager) recordResult(ctx context.Context, result *entity.Result) {
	log := that.logger.With("method", "recordResult", "game_id", result.GameID)

	if err := that.resultRepo.Record(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
	}
}

// getGame must be called with mu held; it refreshes the session's idle clock.
func (that *GameManager) getGame(id string) (*gomoku.Game, error) {
	s, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	s.touchedAt = that.now()

	return s.game, nil
}
