package game

import (
	"math/rand"
	"time"
)

// State is the session phase.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	default:
		return "idle"
	}
}

// Events reports what one tick did, for the caller to act on: bounces
// feed scoring already applied to the session, Missed means the session
// just ended, NewRecord means the high score rose and should be
// persisted.
type Events struct {
	Bounces   int
	Spawned   int
	Missed    bool
	NewRecord bool
}

// Session is the authoritative state of one game: phase, scores, the
// live balls, and both paddles. It is pure and single-threaded; the
// caller drives it with Tick at a fixed logical rate and owns all I/O.
type Session struct {
	State     State
	Score     int
	HighScore int
	Bounces   int
	Ticks     int

	Balls []*Ball
	Left  Paddle
	Right Paddle

	rng *rand.Rand
}

// NewSession creates an idle session. rng is the only randomness source
// (spawn directions and bounce jitter); pass a seeded one in tests, nil
// for a time-seeded default. highScore is the persisted best loaded at
// startup.
func NewSession(rng *rand.Rand, highScore int) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		HighScore: highScore,
		Left:      NewLeftPaddle(),
		Right:     NewRightPaddle(),
		rng:       rng,
	}
}

// Start begins a fresh run from idle or gameOver: score and bounce
// counter to zero, paddles to their start angles, balls cleared and one
// spawned.
func (s *Session) Start() {
	s.State = StatePlaying
	s.Score = 0
	s.Bounces = 0
	s.Left.Reset()
	s.Right.Reset()
	s.clearBalls()
	s.spawnBall()
}

// Tick advances the simulation one logical step with the given input
// snapshot. Idle and gameOver sessions are inert: no paddle movement,
// no ball integration.
func (s *Session) Tick(in Input) Events {
	var ev Events
	if s.State != StatePlaying {
		return ev
	}
	s.Ticks++

	s.Left.Move(in.Left)
	s.Right.Move(in.Right)

	for _, b := range s.Balls {
		res := stepBall(b, &s.Left, &s.Right, s.rng)
		b.Pos = res.pos
		b.Vel = res.vel
		switch res.kind {
		case stepBounce:
			ev.Bounces++
		case stepMiss:
			ev.Missed = true
		}
	}

	// Every bounce of the tick is scored, across all balls, even on the
	// tick that ends the session.
	if ev.Bounces > 0 {
		prev := s.Bounces
		s.Score += ev.Bounces
		s.Bounces += ev.Bounces
		if !ev.Missed {
			for i := 0; i < spawnDue(prev, s.Bounces); i++ {
				s.spawnBall()
				ev.Spawned++
			}
		}
	}

	// The first miss ends the whole session, even with other balls
	// still in flight.
	if ev.Missed {
		s.State = StateGameOver
		if s.Score > s.HighScore {
			s.HighScore = s.Score
			ev.NewRecord = true
		}
		s.clearBalls()
	}

	return ev
}
