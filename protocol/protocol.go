package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgInput   = "input"
	MsgStart   = "start"
	MsgResize  = "resize"
	MsgWelcome = "welcome"
	MsgState   = "state"
)

const (
	// SimTickHz is the fixed logical tick rate of the simulation. All
	// per-tick speeds in the game package assume exactly this rate; the
	// display refresh of a client never drives physics.
	SimTickHz     = 60
	ClientInputHz = 30
	BroadcastHz   = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
