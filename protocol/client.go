package protocol

// Payloads coming in from the client.

type Hello struct {
	V       int     `json:"v"`                 // version
	Name    string  `json:"name,omitempty"`    // optional name
	BoardPx float64 `json:"boardPx,omitempty"` // board diameter in pixels
}

// Input carries the latest normalized intent for both paddles. A step
// is -1, 0, or +1 (keyboard-style); a target is an absolute angle in
// degrees (slider/touch-style) and wins over the step when present.
type Input struct {
	LeftStep    int      `json:"leftStep,omitempty"`
	LeftTarget  *float64 `json:"leftTarget,omitempty"`
	RightStep   int      `json:"rightStep,omitempty"`
	RightTarget *float64 `json:"rightTarget,omitempty"`
}

// Start begins a session from idle or restarts one from gameOver.
type Start struct{}

// Resize updates the client's board diameter used to scale snapshots.
type Resize struct {
	BoardPx float64 `json:"boardPx"`
}
