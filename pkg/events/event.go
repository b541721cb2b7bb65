package events

import (
	"encoding/json"
	"time"
)

const (
	TypeContextResolved = "CONTEXT_RESOLVED"
	TypeContextCleared  = "CONTEXT_CLEARED"
	TypeProfileSaved    = "NMS_PROFILE_SAVED"
	TypeProfileCleared  = "NMS_PROFILE_CLEARED"
)

// Event defines the contract for all provisioning audit events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CONTEXT_RESOLVED").
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Marshal encodes the whole envelope, not only the payload.
func Marshal(e BaseEvent) ([]byte, error) {
	return json.Marshal(e)
}

func Unmarshal(data []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
