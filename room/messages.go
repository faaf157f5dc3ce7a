package room

import "ringpong/game"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn    Conn
	Name    string
	BoardPx float64
	Reply   chan<- JoinResult
}

type JoinResult struct {
	PlayerID  string
	HighScore int
}

// Input: latest combined paddle intent for a player
type Input struct {
	PlayerID string
	Input    game.Input
}

// Start: begin or restart the session
type Start struct {
	PlayerID string
}

// Resize: the player's board diameter changed
type Resize struct {
	PlayerID string
	BoardPx  float64
}

// Leave: issued on disconnect
type Leave struct {
	PlayerID string
}
