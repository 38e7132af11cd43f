package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var errBadRequest = errors.New("bad request")

type createGameRequest struct {
	BoardSize int `json:"board_size"`
}

type placeRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type placeCellRequest struct {
	Col *int `json:"col"`
	Row *int `json:"row"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, errBadRequest)
		return
	}

	game, err := that.uGame.CreateGame(r.Context(), req.BoardSize)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) attemptPlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.X == nil || req.Y == nil {
		that.writeError(w, errBadRequest)
		return
	}

	outcome, err := that.uGame.AttemptPlace(r.Context(), chi.URLParam(r, "id"), *req.X, *req.Y)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeOutcome(w, outcome)
}

func (that *Server) placeCell(w http.ResponseWriter, r *http.Request) {
	var req placeCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Col == nil || req.Row == nil {
		that.writeError(w, errBadRequest)
		return
	}

	outcome, err := that.uGame.PlaceCell(r.Context(), chi.URLParam(r, "id"), *req.Col, *req.Row)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeOutcome(w, outcome)
}

func (that *Server) tally(w http.ResponseWriter, r *http.Request) {
	tally, err := that.uGame.Tally(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, tally)
}

// writeOutcome - rejected placements answer 409 with the outcome as body.
func (that *Server) writeOutcome(w http.ResponseWriter, outcome *entity.Outcome) {
	status := http.StatusOK
	if outcome.Reason != "" {
		status = http.StatusConflict
	}

	that.writeJSON(w, status, outcome)
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := http.StatusText(status)

	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidBoardSize),
		errors.Is(err, apperror.ErrInvalidCellSize):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
		message = apperror.ErrGameNotFound.Error()
	default:
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
