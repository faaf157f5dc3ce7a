package game

import (
	"math"
	"math/rand"
)

type stepKind int

const (
	stepContinue stepKind = iota
	stepBounce
	stepMiss
)

type stepResult struct {
	kind stepKind
	pos  Vec
	vel  Vec
}

// stepBall advances b by one tick and resolves any boundary contact.
// A crossing inside a paddle window reflects the velocity about the
// tangent, scales it by SpeedUpFactor, and rotates it by a small random
// jitter so the ball cannot settle into a periodic orbit between the
// same two contact points. A crossing outside both windows is a miss.
func stepBall(b *Ball, left, right *Paddle, rng *rand.Rand) stepResult {
	pos := b.Pos.Add(b.Vel)
	dist := pos.Len()

	// The normal is undefined at the exact center (only reachable the
	// instant a ball spawns); skip the boundary test for that tick.
	if dist == 0 || dist <= ArenaRadius-BallRadius {
		return stepResult{kind: stepContinue, pos: pos, vel: b.Vel}
	}

	angle := NormalizeDeg(RadToDeg(math.Atan2(pos.Y, pos.X)))

	// Left is tested first and wins if the windows ever overlap.
	hit := math.Abs(SignedDeltaDeg(angle, left.AngleDeg())) <= PaddleHalfSpanDeg ||
		math.Abs(SignedDeltaDeg(angle, right.AngleDeg())) <= PaddleHalfSpanDeg
	if !hit {
		return stepResult{kind: stepMiss, pos: pos, vel: b.Vel}
	}

	n := pos.Scale(1 / dist)
	vel := Reflect(b.Vel, n).Scale(SpeedUpFactor)
	jitter := (rng.Float64()*2 - 1) * JitterDeg
	vel = Rotate(vel, DegToRad(jitter))

	// Settle the contact point just inside the boundary so floating
	// error cannot re-trigger the same collision next tick.
	pos = n.Scale(ArenaRadius - BallRadius)

	return stepResult{kind: stepBounce, pos: pos, vel: vel}
}
