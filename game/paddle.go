package game

type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Paddle is an arc segment of the boundary. Its angle is stored in the
// clamp domain of its side: raw degrees for the left paddle (its range
// never touches the 0/360 seam) and signed degrees for the right paddle
// (its range straddles the seam, so clamping happens in (-180,180]
// where the range is one plain interval).
type Paddle struct {
	Side     Side
	angleDeg float64
	startDeg float64
	minDeg   float64
	maxDeg   float64
}

func NewLeftPaddle() Paddle {
	return Paddle{Side: SideLeft, angleDeg: LeftStartDeg, startDeg: LeftStartDeg, minDeg: LeftMinDeg, maxDeg: LeftMaxDeg}
}

func NewRightPaddle() Paddle {
	return Paddle{Side: SideRight, angleDeg: RightStartDeg, startDeg: RightStartDeg, minDeg: RightMinDeg, maxDeg: RightMaxDeg}
}

// Reset moves the paddle back to its session start angle.
func (p *Paddle) Reset() {
	p.angleDeg = p.startDeg
}

// AngleDeg returns the paddle center in raw degrees [0, 360).
func (p *Paddle) AngleDeg() float64 {
	return NormalizeDeg(p.angleDeg)
}

// SetAngle requests an absolute angle in degrees (any representation).
// Out-of-range requests clamp to the nearer legal boundary; there is no
// error path.
func (p *Paddle) SetAngle(target float64) {
	a := p.toDomain(target)
	if a < p.minDeg {
		a = p.minDeg
	} else if a > p.maxDeg {
		a = p.maxDeg
	}
	p.angleDeg = a
}

// Step nudges the paddle by one per-tick increment in the given
// direction (negative, zero, or positive).
func (p *Paddle) Step(dir int) {
	if dir == 0 {
		return
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	p.SetAngle(p.angleDeg + float64(dir)*PaddleStepDeg)
}

// Move applies one tick's intent: an absolute target when present,
// otherwise the discrete step.
func (p *Paddle) Move(in Intent) {
	if in.Target != nil {
		p.SetAngle(*in.Target)
		return
	}
	p.Step(in.Step)
}

func (p *Paddle) toDomain(a float64) float64 {
	if p.Side == SideRight {
		return SignedDeg(a)
	}
	return NormalizeDeg(a)
}
