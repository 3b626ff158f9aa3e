package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/normalize"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Socket is the subset of a websocket connection the hub needs. The
// gofiber/contrib websocket.Conn satisfies it; tests use fakes.
type Socket interface {
	WriteJSON(v interface{}) error
	ReadMessage() (messageType int, p []byte, err error)
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Conn is one live push channel for one identity. It is owned by the
// hub: created at register, destroyed at unregister, never shared
// across connections. All writes to the socket go through writePump so
// a slow peer can only ever stall its own channel.
type Conn struct {
	id   uuid.UUID
	user users.User

	sock Socket
	out  chan domain.Envelope

	done      chan struct{}
	closeOnce sync.Once

	openedAt time.Time
	log      *logrus.Entry

	mu      sync.Mutex
	area    *AreaFilter
	leagues mapset.Set[LeagueFilter]
}

func newConn(user users.User, sock Socket, buffer int, log *logrus.Entry) *Conn {
	id := uuid.New()
	return &Conn{
		id:       id,
		user:     user,
		sock:     sock,
		out:      make(chan domain.Envelope, buffer),
		done:     make(chan struct{}),
		openedAt: time.Now(),
		leagues:  mapset.NewSet[LeagueFilter](),
		log: log.WithFields(map[string]interface{}{
			"conn": id.String(),
			"user": user.ID.String(),
		}),
	}
}

func (c *Conn) ID() uuid.UUID    { return c.id }
func (c *Conn) User() users.User { return c.user }

// enqueue offers the envelope to the outbound queue, giving up after
// timeout so one unresponsive peer never delays sends to its siblings.
func (c *Conn) enqueue(env domain.Envelope, timeout time.Duration) bool {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case c.out <- env:
		return true
	case <-c.done:
		return false
	case <-t.C:
		return false
	}
}

func (c *Conn) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.sock.Close()
	})
}

// writePump serializes all socket writes: queued envelopes and the
// heartbeat pings. It exits when the connection is closed.
func (c *Conn) writePump(pingInterval, writeTimeout time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case env := <-c.out:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.sock.WriteJSON(env); err != nil {
				c.log.WithError(err).Debug("push write failed")
				c.close()
				return
			}
		case <-ticker.C:
			if err := c.sock.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				c.log.WithError(err).Debug("ping failed")
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// readPump consumes inbound messages until the socket errors or the
// heartbeat window lapses without a pong. It blocks the caller.
func (c *Conn) readPump(heartbeatTimeout time.Duration) {
	_ = c.sock.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	c.sock.SetPongHandler(func(string) error {
		return c.sock.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	})
	for {
		_, data, err := c.sock.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				c.log.WithError(err).Debug("read loop ended")
			}
			return
		}
		c.handleInbound(data)
	}
}

func (c *Conn) handleInbound(data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.log.WithError(err).Warn("unreadable client message")
		return
	}
	switch msg.Type {
	case msgSubscribeToArea:
		c.mu.Lock()
		c.area = &AreaFilter{
			Latitude:  msg.Latitude,
			Longitude: msg.Longitude,
			Radius:    msg.Radius,
		}
		c.mu.Unlock()
		c.log.WithField("radius", msg.Radius).Debug("area subscription updated")
	case msgSubscribeToLeague:
		c.mu.Lock()
		c.leagues.Add(LeagueFilter{
			League:   normalize.Value(msg.League),
			AgeGroup: normalize.Value(msg.AgeGroup),
		})
		c.mu.Unlock()
		c.log.WithField("league", msg.League).Debug("league subscription added")
	case msgMarkRead:
		c.log.WithField("notification", msg.NotificationID).Info("notification acknowledged")
	default:
		c.log.WithField("type", msg.Type).Warn("unknown client message type")
	}
}

// Area returns the current session area filter, if any.
func (c *Conn) Area() (AreaFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.area == nil {
		return AreaFilter{}, false
	}
	return *c.area, true
}

// Leagues returns a snapshot of the session league subscriptions.
func (c *Conn) Leagues() []LeagueFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leagues.ToSlice()
}
