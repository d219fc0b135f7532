package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

const (
	actionNewGame   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameCheck = "game:check"
	actionGameMoves = "game:moves"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - request fields, each action reads the ones it needs.
type Payload struct {
	GameID  string        `json:"game_id,omitempty"`
	Type    string        `json:"type,omitempty"`
	Players int           `json:"players,omitempty"`
	Player  entity.Player `json:"player,omitempty"`
	Piece   int           `json:"piece"`
	Row     int           `json:"row"`
	Col     int           `json:"col"`
}

func (that Payload) position() entity.Position {
	return entity.Position{Row: that.Row, Col: that.Col}
}

type ResponsePayload struct {
	Game    *entity.Game  `json:"game,omitempty"`
	Verdict *Verdict      `json:"verdict,omitempty"`
	Moves   []entity.Move `json:"moves,omitempty"`
	Message string        `json:"message,omitempty"`
}

type Verdict struct {
	Legal  bool          `json:"legal"`
	Reason blokus.Reason `json:"reason_code"`
	Detail string        `json:"reason"`
}

func newVerdict(verdict blokus.Verdict) *Verdict {
	return &Verdict{
		Legal:  verdict.Legal(),
		Reason: verdict.Reason,
		Detail: verdict.String(),
	}
}

func decodeMessage(data []byte) (*Message, error) {
	var msg Message
	if err := sonic.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return &msg, nil
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := sonic.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return payload, nil
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := sonic.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return data, nil
}
