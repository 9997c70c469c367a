package protocol

import "encoding/json"

const (
	IntentRequestDirection = "RequestDirection"
	IntentRequestPause     = "RequestPause"
	IntentRequestRestart   = "RequestRestart"
)

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestDirection steers the spider. Direction is one of up, down, left,
// right or none.
type RequestDirection struct {
	Direction string `json:"direction"`
}

type RequestPause struct {
}

type RequestRestart struct {
}
