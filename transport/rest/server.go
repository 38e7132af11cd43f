package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	CreateGame(ctx context.Context, boardSize int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	AttemptPlace(ctx context.Context, id string, x, y float64) (*entity.Outcome, error)
	PlaceCell(ctx context.Context, id string, col, row int) (*entity.Outcome, error)
	DeleteGame(ctx context.Context, id string) error
	Tally(ctx context.Context) (*entity.Tally, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
}

func New(logger *slog.Logger, uGame uGame) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

// Router - builds the HTTP routes.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", that.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", that.getGame)
			r.Delete("/", that.deleteGame)
			r.Post("/place", that.attemptPlace)
			r.Post("/cells", that.placeCell)
		})
	})

	router.Get("/results/tally", that.tally)

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
