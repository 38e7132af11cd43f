package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

// handleNewGame - a new game replaces the one this connection started before.
func (that *Server) handleNewGame(ctx context.Context, state *connState, raw json.RawMessage) (*ResponsePayload, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	game, err := that.uGame.CreateGame(ctx, payload.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.releaseGame(ctx, state)
	state.gameID = game.ID

	that.logger.Info("game started over websocket", "game_id", game.ID)

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handlePlace(ctx context.Context, state *connState, raw json.RawMessage) (*ResponsePayload, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	if payload.X == nil || payload.Y == nil {
		return nil, errMissingPosition
	}

	outcome, err := that.uGame.AttemptPlace(ctx, gameID(state, payload), *payload.X, *payload.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to place: %w", err)
	}

	return &ResponsePayload{Game: outcome.Game, Outcome: outcome}, nil
}

func (that *Server) handleCell(ctx context.Context, state *connState, raw json.RawMessage) (*ResponsePayload, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	if payload.Col == nil || payload.Row == nil {
		return nil, errMissingPosition
	}

	outcome, err := that.uGame.PlaceCell(ctx, gameID(state, payload), *payload.Col, *payload.Row)
	if err != nil {
		return nil, fmt.Errorf("failed to place: %w", err)
	}

	return &ResponsePayload{Game: outcome.Game, Outcome: outcome}, nil
}

func (that *Server) handleState(ctx context.Context, state *connState, raw json.RawMessage) (*ResponsePayload, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	game, err := that.uGame.GetGame(ctx, gameID(state, payload))
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &ResponsePayload{Game: game}, nil
}

// gameID - an omitted game_id means the connection's own game.
func gameID(state *connState, payload *RequestPayload) string {
	if payload.GameID != "" {
		return payload.GameID
	}

	return state.gameID
}
