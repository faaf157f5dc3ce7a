package game

// All lengths and speeds are in normalized arena space: the arena
// diameter is 1 and clients scale by their board size in pixels.
// Speeds are per logical tick (protocol.SimTickHz), not per second.
const (
	ArenaRadius = 0.5
	BallRadius  = 0.02

	BallSpeedPerTick = 0.005 // initial ball speed
	SpeedUpFactor    = 1.15  // multiplicative per bounce, uncapped
	JitterDeg        = 7.5   // bounce jitter, uniform in ±JitterDeg

	PaddleHalfSpanDeg = 30.0
	PaddleStepDeg     = 3.0 // per-tick step for keyboard-style input
	PaddleThickness   = 0.033

	SpawnEveryBounces = 5 // extra ball every Nth bounce, session-wide

	// Left paddle lives on the half of the circle around 180° and may
	// not cross into the right paddle's half; ranges keep the full arc
	// span inside [90, 270].
	LeftStartDeg = 180.0
	LeftMinDeg   = 90 + PaddleHalfSpanDeg
	LeftMaxDeg   = 270 - PaddleHalfSpanDeg

	// Right paddle straddles the 0/360 seam; its range is expressed in
	// signed degrees so the clamp never sees the seam.
	RightStartDeg = 0.0
	RightMinDeg   = -(90 - PaddleHalfSpanDeg)
	RightMaxDeg   = 90 - PaddleHalfSpanDeg
)
