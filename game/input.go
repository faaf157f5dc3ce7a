package game

// Intent is one paddle's normalized input for a tick: a keyboard-style
// step in {-1, 0, +1} or an absolute target angle in degrees
// (slider/touch-style). Target wins when both are set.
type Intent struct {
	Step   int
	Target *float64
}

// Input is the per-tick input snapshot for both paddles. The room polls
// it at the top of each tick, last writer wins; toggles faster than the
// tick rate coalesce.
type Input struct {
	Left  Intent
	Right Intent
}
