package protocol

type Welcome struct {
	PlayerID  string `json:"playerId"`
	TickHz    int    `json:"tickHz"`
	HighScore int    `json:"highScore"`
}

// State is the read-only snapshot a client renders from. Lengths are in
// normalized arena space (diameter = 1) until scaled; angles are raw
// degrees in [0, 360) and never scale.
type State struct {
	Tick      int              `json:"tick"`
	Phase     string           `json:"phase"` // idle | playing | gameOver
	Score     int              `json:"score"`
	HighScore int              `json:"highScore"`
	Balls     []BallSnapshot   `json:"balls,omitempty"`
	Paddles   []PaddleSnapshot `json:"paddles"`
}

type BallSnapshot struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	R  float64 `json:"r"`
}

type PaddleSnapshot struct {
	Side        string  `json:"side"` // left | right
	AngleDeg    float64 `json:"angleDeg"`
	HalfSpanDeg float64 `json:"halfSpanDeg"`
	Thickness   float64 `json:"thickness"`
}

// Scaled returns a copy of the snapshot with every length multiplied by
// the board diameter in pixels. A non-positive diameter leaves the
// snapshot in normalized space.
func (s State) Scaled(boardPx float64) State {
	if boardPx <= 0 {
		boardPx = 1
	}
	out := s
	out.Balls = make([]BallSnapshot, len(s.Balls))
	for i, b := range s.Balls {
		b.X *= boardPx
		b.Y *= boardPx
		b.R *= boardPx
		out.Balls[i] = b
	}
	out.Paddles = make([]PaddleSnapshot, len(s.Paddles))
	for i, p := range s.Paddles {
		p.Thickness *= boardPx
		out.Paddles[i] = p
	}
	return out
}
