package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	shutdownTimeout = 5 * time.Second
	maxMessageSize  = 4 << 10
)

type uGame interface {
	CreateGame(ctx context.Context, boardSize int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	AttemptPlace(ctx context.Context, id string, x, y float64) (*entity.Outcome, error)
	PlaceCell(ctx context.Context, id string, col, row int) (*entity.Outcome, error)
	DeleteGame(ctx context.Context, id string) error
}

// connState is what one connection owns: the game it started last.
type connState struct {
	gameID string
}

type handler func(ctx context.Context, state *connState, payload json.RawMessage) (*ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handler),
	}

	server.handlers[ActionNewGame] = server.handleNewGame
	server.handlers[ActionPlace] = server.handlePlace
	server.handlers[ActionCell] = server.handleCell
	server.handlers[ActionState] = server.handleState

	return server
}

// Handler - serves the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and processes messages one at a time.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - reads until the peer goes away, then discards the connection's game.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	state := &connState{}
	defer that.releaseGame(context.WithoutCancel(ctx), state)

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Warn("failed to unmarshal message", "error", err)
				if err = writeError(conn, ActionError, errMalformedMessage); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		if err := that.dispatch(ctx, conn, state, &message); err != nil {
			return err
		}
	}
}

// dispatch - runs the handler for message; only write failures are returned.
func (that *Server) dispatch(ctx context.Context, conn *websocket.Conn, state *connState, message *Message) error {
	handle, ok := that.handlers[message.Action]
	if !ok {
		that.logger.Warn("unknown action", "action", message.Action)
		return writeError(conn, message.Action, errUnknownAction)
	}

	response, err := handle(ctx, state, message.Payload)
	if err != nil {
		that.logger.Debug("error processing message", "action", message.Action, "error", err)
		return writeError(conn, message.Action, err)
	}

	return writeMessage(conn, message.Action, response)
}

// releaseGame - drops the game owned by state, if any.
func (that *Server) releaseGame(ctx context.Context, state *connState) {
	if state.gameID == "" {
		return
	}

	if err := that.uGame.DeleteGame(ctx, state.gameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		that.logger.Error("failed to delete game", "game_id", state.gameID, "error", err)
	}

	state.gameID = ""
}
