package network

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ringpong/game"
	"ringpong/protocol"
	"ringpong/room"
)

const (
	readLimit    = 1 << 20 // 1MB
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 25 * time.Second
	sendBuffer   = 64
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a websocket connection to room.Conn. Sends go through a
// buffered channel drained by a write pump, so a slow client drops off
// instead of stalling the room's tick loop.
type wsConn struct {
	ws   *websocket.Conn
	out  chan []byte
	done chan struct{}
	once sync.Once
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{
		ws:   ws,
		out:  make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *wsConn) Send(b []byte) error {
	select {
	case c.out <- b:
		return nil
	case <-c.done:
		return websocket.ErrCloseSent
	default:
		// Buffer full: the client is not keeping up. Drop it; the room
		// removes clients whose sends fail.
		return websocket.ErrCloseSent
	}
}

func (c *wsConn) Close() error {
	c.once.Do(func() { close(c.done) })
	return c.ws.Close()
}

func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case b := <-c.out:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

// Handler upgrades to WebSocket, performs the hello handshake, joins
// the requested room, and relays envelopes until the client leaves.
func Handler(m *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		code := req.URL.Query().Get("room")
		rm := m.GetOrCreateRoom(code)
		if rm == nil {
			http.Error(w, "missing room code", http.StatusBadRequest)
			return
		}

		ws, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			slog.Warn("upgrade", "err", err)
			return
		}

		ws.SetReadLimit(readLimit)
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
		ws.SetPongHandler(func(string) error {
			_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
			return nil
		})

		conn := newWSConn(ws)
		go conn.writePump()

		hello, err := readHello(ws)
		if err != nil {
			slog.Warn("handshake", "err", err)
			_ = conn.Close()
			return
		}

		reply := make(chan room.JoinResult, 1)
		rm.Inbox <- room.Join{Conn: conn, Name: hello.Name, BoardPx: hello.BoardPx, Reply: reply}
		res := <-reply

		welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
			PlayerID:  res.PlayerID,
			TickHz:    protocol.SimTickHz,
			HighScore: res.HighScore,
		})
		if err == nil {
			_ = conn.Send(welcome)
		}

		defer func() {
			rm.Inbox <- room.Leave{PlayerID: res.PlayerID}
			_ = conn.Close()
		}()

		for {
			_, msg, err := ws.ReadMessage()
			if err != nil {
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(readTimeout))

			env, err := protocol.DecodeEnvelope(msg)
			if err != nil {
				continue
			}
			switch env.T {
			case protocol.MsgInput:
				in, err := protocol.DecodePayload[protocol.Input](env)
				if err != nil {
					continue
				}
				rm.Inbox <- room.Input{PlayerID: res.PlayerID, Input: toGameInput(in)}
			case protocol.MsgStart:
				rm.Inbox <- room.Start{PlayerID: res.PlayerID}
			case protocol.MsgResize:
				rz, err := protocol.DecodePayload[protocol.Resize](env)
				if err != nil {
					continue
				}
				rm.Inbox <- room.Resize{PlayerID: res.PlayerID, BoardPx: rz.BoardPx}
			}
		}
	}
}

// readHello waits for the first message, which must be a hello.
func readHello(ws *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := ws.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, errNotHello
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

type handshakeErr string

func (e handshakeErr) Error() string { return string(e) }

const errNotHello = handshakeErr("first message must be hello")

// toGameInput clamps wire intents into the simulation's domain.
func toGameInput(in protocol.Input) game.Input {
	return game.Input{
		Left:  game.Intent{Step: clampStep(in.LeftStep), Target: in.LeftTarget},
		Right: game.Intent{Step: clampStep(in.RightStep), Target: in.RightTarget},
	}
}

func clampStep(s int) int {
	if s < -1 {
		return -1
	}
	if s > 1 {
		return 1
	}
	return s
}
