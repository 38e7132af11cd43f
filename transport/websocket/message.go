package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	ActionNewGame = "game:new"
	ActionPlace   = "game:place"
	ActionCell    = "game:cell"
	ActionState   = "game:state"
	ActionError   = "error"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errMissingPosition  = errors.New("position is required")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID    string   `json:"game_id,omitempty"`
	BoardSize int      `json:"board_size,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	Col       *int     `json:"col,omitempty"`
	Row       *int     `json:"row,omitempty"`
}

type ResponsePayload struct {
	Game    *entity.Game    `json:"game,omitempty"`
	Outcome *entity.Outcome `json:"outcome,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func writeMessage(conn *websocket.Conn, action string, payload *ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func writeError(conn *websocket.Conn, action string, cause error) error {
	return writeMessage(conn, action, &ResponsePayload{Error: cause.Error()})
}

func decodePayload(raw json.RawMessage) (*RequestPayload, error) {
	var payload RequestPayload
	if len(raw) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return &payload, nil
}
