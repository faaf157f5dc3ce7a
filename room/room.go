package room

import (
	"fmt"
	"log/slog"
	"time"

	"ringpong/game"
	"ringpong/protocol"
)

// HighScoreStore is the persistence collaborator. Best is read when the
// room is created; Record is called only when a session ends with a new
// record. A Record failure is logged and otherwise ignored: the
// in-memory high score is already updated and gameplay is unaffected.
type HighScoreStore interface {
	Best() (int, error)
	Record(score int) error
}

type client struct {
	conn    Conn
	boardPx float64
}

// Room owns one game session and runs it at the fixed logical tick
// rate. All access goes through the Inbox channel; the simulation
// itself is single-threaded and lock-free.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	session        *game.Session
	clients        map[string]*client
	latest         game.Input
	nextID         int
	frames         int
	quit           chan struct{}
	store          HighScoreStore

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when last player leaves
}

func New(store HighScoreStore) *Room {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	best := 0
	if store != nil {
		b, err := store.Best()
		if err != nil {
			slog.Warn("load high score", "err", err)
		} else {
			best = b
		}
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		session:        game.NewSession(nil, best),
		clients:        make(map[string]*client),
		nextID:         1,
		quit:           make(chan struct{}),
		store:          store,
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return len(r.clients)
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Room) tick() {
	r.frames++
	ev := r.session.Tick(r.latest)
	if ev.NewRecord && r.store != nil {
		if err := r.store.Record(r.session.HighScore); err != nil {
			slog.Warn("persist high score", "score", r.session.HighScore, "err", err)
		}
	}
	if ev.Missed || r.frames%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		playerID := fmt.Sprintf("p%d", r.nextID)
		r.nextID++
		r.clients[playerID] = &client{conn: c.Conn, boardPx: c.BoardPx}
		c.Reply <- JoinResult{PlayerID: playerID, HighScore: r.session.HighScore}
		r.sendStateTo(r.clients[playerID])
	case Input:
		if _, ok := r.clients[c.PlayerID]; !ok {
			return
		}
		// Last writer wins; the snapshot is polled at the next tick.
		r.latest = c.Input
	case Start:
		if _, ok := r.clients[c.PlayerID]; !ok {
			return
		}
		if r.session.State != game.StatePlaying {
			r.session.Start()
			r.broadcastState()
		}
	case Resize:
		if cl, ok := r.clients[c.PlayerID]; ok {
			cl.boardPx = c.BoardPx
		}
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) handleLeave(playerID string) {
	cl, ok := r.clients[playerID]
	if ok {
		_ = cl.conn.Close()
		delete(r.clients, playerID)
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removeClient(playerID string) {
	if cl, ok := r.clients[playerID]; ok {
		_ = cl.conn.Close()
	}
	delete(r.clients, playerID)
}

func (r *Room) broadcastState() {
	snapshot := r.snapshot()

	var failed []string
	for id, cl := range r.clients {
		b, err := protocol.Encode(protocol.MsgState, snapshot.Scaled(cl.boardPx))
		if err != nil {
			return
		}
		if err := cl.conn.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
}

func (r *Room) sendStateTo(cl *client) {
	b, err := protocol.Encode(protocol.MsgState, r.snapshot().Scaled(cl.boardPx))
	if err != nil {
		return
	}
	_ = cl.conn.Send(b)
}

// snapshot builds the normalized read-only view of the session; it
// never mutates simulation state.
func (r *Room) snapshot() protocol.State {
	s := r.session
	st := protocol.State{
		Tick:      s.Ticks,
		Phase:     s.State.String(),
		Score:     s.Score,
		HighScore: s.HighScore,
		Paddles: []protocol.PaddleSnapshot{
			{
				Side:        game.SideLeft.String(),
				AngleDeg:    s.Left.AngleDeg(),
				HalfSpanDeg: game.PaddleHalfSpanDeg,
				Thickness:   game.PaddleThickness,
			},
			{
				Side:        game.SideRight.String(),
				AngleDeg:    s.Right.AngleDeg(),
				HalfSpanDeg: game.PaddleHalfSpanDeg,
				Thickness:   game.PaddleThickness,
			},
		},
	}
	for _, b := range s.Balls {
		st.Balls = append(st.Balls, protocol.BallSnapshot{
			ID: b.ID,
			X:  b.Pos.X,
			Y:  b.Pos.Y,
			R:  game.BallRadius,
		})
	}
	return st
}
