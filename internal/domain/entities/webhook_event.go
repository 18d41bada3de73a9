package entities

import (
	"encoding/json"
	"time"
)

// EventTypePrefix namespaces verified processor events so subscribers key on
// "<processor>.<original type>" rather than the raw wire type.
const EventTypePrefix = "stripe."

// WebhookEvent is a verified processor notification. It is ephemeral: never
// persisted, only carried from signature verification to dispatch. An event
// that failed verification never becomes a WebhookEvent.

type WebhookEvent struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	ConfigID string          `json:"payment_method_config_id"`
	Created  time.Time       `json:"created"`
	Object   json.RawMessage `json:"object"`
}
