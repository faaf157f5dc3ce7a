package game

import (
	"math"

	"github.com/google/uuid"
)

// Ball is one in-flight ball. Position is relative to the arena center
// and velocity is per tick, both in normalized space.
type Ball struct {
	ID  string
	Pos Vec
	Vel Vec
}

// spawnBall adds a ball at the arena center with the initial speed and a
// direction sampled uniformly over the full circle.
func (s *Session) spawnBall() {
	theta := s.rng.Float64() * 2 * math.Pi
	s.Balls = append(s.Balls, &Ball{
		ID:  uuid.NewString(),
		Vel: Vec{X: math.Cos(theta), Y: math.Sin(theta)}.Scale(BallSpeedPerTick),
	})
}

// spawnDue returns how many extra balls a tick owes after the shared
// bounce counter moved from prev to cur: one per threshold multiple
// crossed, session-wide rather than per ball.
func spawnDue(prev, cur int) int {
	return cur/SpawnEveryBounces - prev/SpawnEveryBounces
}

func (s *Session) clearBalls() {
	s.Balls = nil
}
