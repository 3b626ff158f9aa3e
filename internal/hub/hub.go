package hub

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hub is the connection registry: a multi-map from identity to open
// push channels. State is split across identity-hashed shards so
// register/unregister for unrelated users never contend on one lock.
// An offline identity is a normal case, reported through delivered
// counts, never as an error.
type Hub struct {
	shards []*shard

	// index resolves a connection ID back to its Conn. Touched only on
	// register/unregister, never on the send paths.
	indexMu sync.Mutex
	index   map[uuid.UUID]*Conn

	outBuffer        int
	sendTimeout      time.Duration
	pingInterval     time.Duration
	heartbeatTimeout time.Duration

	log *logrus.Entry
}

type shard struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]map[*Conn]struct{}
}

func New(l *logrus.Logger, cfg config.Hub) *Hub {
	shardCount := cfg.Shards
	if shardCount <= 0 {
		shardCount = 1
	}
	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{conns: make(map[uuid.UUID]map[*Conn]struct{})}
	}
	return &Hub{
		shards:           shards,
		index:            make(map[uuid.UUID]*Conn),
		outBuffer:        cfg.OutboundBuffer,
		sendTimeout:      config.Duration(cfg.SendTimeout, 2*time.Second),
		pingInterval:     config.Duration(cfg.HeartbeatInterval, 30*time.Second),
		heartbeatTimeout: config.Duration(cfg.HeartbeatTimeout, 75*time.Second),
		log:              l.WithField("from", "hub"),
	}
}

func (h *Hub) shardFor(userID uuid.UUID) *shard {
	f := fnv.New32a()
	f.Write(userID[:])
	return h.shards[int(f.Sum32())%len(h.shards)]
}

// Register adds a channel for the identity and returns its connection
// ID. Multiple simultaneous connections per identity are expected
// (multi-tab, multi-device); all of them receive targeted sends.
func (h *Hub) Register(user users.User, sock Socket) *Conn {
	c := newConn(user, sock, h.outBuffer, h.log)

	sh := h.shardFor(user.ID)
	sh.mu.Lock()
	set, ok := sh.conns[user.ID]
	if !ok {
		set = make(map[*Conn]struct{})
		sh.conns[user.ID] = set
	}
	set[c] = struct{}{}
	sh.mu.Unlock()

	h.indexMu.Lock()
	h.index[c.id] = c
	h.indexMu.Unlock()

	c.log.Info("push channel registered")
	return c
}

// Unregister removes the connection from the registry and closes it.
// Idempotent: it is called on clean close, error and heartbeat failure
// alike, and repeated calls are no-ops.
func (h *Hub) Unregister(connectionID uuid.UUID) {
	h.indexMu.Lock()
	c, ok := h.index[connectionID]
	delete(h.index, connectionID)
	h.indexMu.Unlock()
	if !ok {
		return
	}

	sh := h.shardFor(c.user.ID)
	sh.mu.Lock()
	if set, ok := sh.conns[c.user.ID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(sh.conns, c.user.ID)
		}
	}
	sh.mu.Unlock()

	c.close()
	c.log.Info("push channel unregistered")
}

// Serve runs a registered connection's pumps until the channel dies,
// then unregisters it. It blocks the caller (the websocket handler
// goroutine) and guarantees unregistration on every exit path.
func (h *Hub) Serve(user users.User, sock Socket) {
	c := h.Register(user, sock)
	defer h.Unregister(c.id)

	go c.writePump(h.pingInterval, h.sendTimeout)

	welcome := domain.NewEnvelope(domain.Notification{
		Kind:  domain.KindWelcome,
		Title: "Connected",
		Body:  "You will receive matchday alerts here.",
	})
	c.enqueue(welcome, h.sendTimeout)

	c.readPump(h.heartbeatTimeout)
}

// snapshot copies the identity's channel set so a concurrent
// unregister cannot corrupt iteration.
func (sh *shard) snapshot(userID uuid.UUID) []*Conn {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	set := sh.conns[userID]
	out := make([]*Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

func (sh *shard) snapshotAll() []*Conn {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	var out []*Conn
	for _, set := range sh.conns {
		for c := range set {
			out = append(out, c)
		}
	}
	return out
}

// SendToIdentity enqueues the notification on every live channel for
// the identity. It reports true iff at least one channel accepted it;
// false means the user is offline, which is not an error.
func (h *Hub) SendToIdentity(userID uuid.UUID, n domain.Notification) bool {
	conns := h.shardFor(userID).snapshot(userID)
	if len(conns) == 0 {
		return false
	}
	env := domain.NewEnvelope(n)
	delivered := false
	for _, c := range conns {
		if c.enqueue(env, h.sendTimeout) {
			delivered = true
		} else {
			c.log.Warn("push channel did not accept send")
		}
	}
	return delivered
}

// SendToRole pushes to every connection whose identity carries the
// role, returning the number of channels that accepted the message.
func (h *Hub) SendToRole(role domain.Role, n domain.Notification) int {
	env := domain.NewEnvelope(n)
	count := 0
	for _, sh := range h.shards {
		for _, c := range sh.snapshotAll() {
			if c.user.Role != role {
				continue
			}
			if c.enqueue(env, h.sendTimeout) {
				count++
			}
		}
	}
	return count
}

// Broadcast pushes to every live connection.
func (h *Hub) Broadcast(n domain.Notification) int {
	env := domain.NewEnvelope(n)
	count := 0
	for _, sh := range h.shards {
		for _, c := range sh.snapshotAll() {
			if c.enqueue(env, h.sendTimeout) {
				count++
			}
		}
	}
	return count
}

// CountForIdentity reports the number of live channels for an identity.
func (h *Hub) CountForIdentity(userID uuid.UUID) int {
	sh := h.shardFor(userID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return len(sh.conns[userID])
}

// Close unregisters every live connection. Used on shutdown.
func (h *Hub) Close() {
	h.indexMu.Lock()
	ids := make([]uuid.UUID, 0, len(h.index))
	for id := range h.index {
		ids = append(ids, id)
	}
	h.indexMu.Unlock()
	for _, id := range ids {
		h.Unregister(id)
	}
}
