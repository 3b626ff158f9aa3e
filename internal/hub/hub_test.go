package hub

import (
	"io"
	"testing"
	"time"

	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSocket struct{}

func (f *fakeSocket) WriteJSON(interface{}) error { return nil }
func (f *fakeSocket) ReadMessage() (int, []byte, error) {
	select {}
}
func (f *fakeSocket) WriteControl(int, []byte, time.Time) error { return nil }
func (f *fakeSocket) SetReadDeadline(time.Time) error           { return nil }
func (f *fakeSocket) SetWriteDeadline(time.Time) error          { return nil }
func (f *fakeSocket) SetPongHandler(func(string) error)         {}
func (f *fakeSocket) Close() error                              { return nil }

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testHub(buffer int) *Hub {
	return New(testLogger(), config.Hub{
		Shards:         4,
		OutboundBuffer: buffer,
		SendTimeout:    "50ms",
	})
}

func testNotification() domain.Notification {
	return domain.Notification{
		Kind:  domain.KindNewVacancy,
		Title: "New vacancy",
		Body:  "A team needs a striker",
	}
}

func TestSendToIdentityMultiDevice(t *testing.T) {
	h := testHub(4)
	user := users.User{ID: uuid.New(), Name: "alice", Role: domain.RolePlayer}

	a := h.Register(user, &fakeSocket{})
	b := h.Register(user, &fakeSocket{})
	c := h.Register(user, &fakeSocket{})
	require.Equal(t, 3, h.CountForIdentity(user.ID))

	require.True(t, h.SendToIdentity(user.ID, testNotification()))
	for _, conn := range []*Conn{a, b, c} {
		assert.Len(t, conn.out, 1)
	}

	// One device disconnects; the rest stay reachable.
	h.Unregister(b.ID())
	require.Equal(t, 2, h.CountForIdentity(user.ID))
	require.True(t, h.SendToIdentity(user.ID, testNotification()))
	assert.Len(t, a.out, 2)
	assert.Len(t, b.out, 1)
	assert.Len(t, c.out, 2)
}

func TestZeroConfigGetsOneShard(t *testing.T) {
	h := New(testLogger(), config.Hub{OutboundBuffer: 1})
	user := users.User{ID: uuid.New(), Name: "carol", Role: domain.RolePlayer}

	c := h.Register(user, &fakeSocket{})
	require.Equal(t, 1, h.CountForIdentity(user.ID))
	require.True(t, h.SendToIdentity(user.ID, testNotification()))

	h.Unregister(c.ID())
	assert.Equal(t, 0, h.CountForIdentity(user.ID))
}

func TestSendToIdentityOffline(t *testing.T) {
	h := testHub(4)
	user := users.User{ID: uuid.New(), Name: "bob", Role: domain.RoleCoach}

	assert.False(t, h.SendToIdentity(user.ID, testNotification()))

	c := h.Register(user, &fakeSocket{})
	require.True(t, h.SendToIdentity(user.ID, testNotification()))

	h.Unregister(c.ID())
	assert.Equal(t, 0, h.CountForIdentity(user.ID))
	assert.False(t, h.SendToIdentity(user.ID, testNotification()))
}

func TestUnregisterIdempotent(t *testing.T) {
	h := testHub(4)
	user := users.User{ID: uuid.New(), Name: "carol", Role: domain.RoleParent}

	c := h.Register(user, &fakeSocket{})
	h.Unregister(c.ID())
	h.Unregister(c.ID())
	assert.Equal(t, 0, h.CountForIdentity(user.ID))
}

func TestSendToIdentityBrokenSibling(t *testing.T) {
	h := testHub(1)
	user := users.User{ID: uuid.New(), Name: "dave", Role: domain.RolePlayer}

	healthy := h.Register(user, &fakeSocket{})
	stuck := h.Register(user, &fakeSocket{})

	// Fill both one-slot queues, then drain only the healthy one.
	require.True(t, h.SendToIdentity(user.ID, testNotification()))
	<-healthy.out

	// The stuck sibling's queue stays full and its enqueue times out,
	// but delivery to the identity still succeeds.
	require.True(t, h.SendToIdentity(user.ID, testNotification()))
	assert.Len(t, healthy.out, 1)
	assert.Len(t, stuck.out, 1)
}

func TestSendToRoleAndBroadcast(t *testing.T) {
	h := testHub(4)
	coach := users.User{ID: uuid.New(), Name: "coach", Role: domain.RoleCoach}
	player := users.User{ID: uuid.New(), Name: "player", Role: domain.RolePlayer}

	h.Register(coach, &fakeSocket{})
	h.Register(coach, &fakeSocket{})
	h.Register(player, &fakeSocket{})

	assert.Equal(t, 2, h.SendToRole(domain.RoleCoach, testNotification()))
	assert.Equal(t, 1, h.SendToRole(domain.RolePlayer, testNotification()))
	assert.Equal(t, 0, h.SendToRole(domain.RoleAdmin, testNotification()))
	assert.Equal(t, 3, h.Broadcast(testNotification()))
}

func TestCloseDropsEverything(t *testing.T) {
	h := testHub(4)
	u1 := users.User{ID: uuid.New(), Name: "u1", Role: domain.RolePlayer}
	u2 := users.User{ID: uuid.New(), Name: "u2", Role: domain.RoleCoach}
	h.Register(u1, &fakeSocket{})
	h.Register(u2, &fakeSocket{})

	h.Close()
	assert.False(t, h.SendToIdentity(u1.ID, testNotification()))
	assert.False(t, h.SendToIdentity(u2.ID, testNotification()))
}

func TestHandleInboundSubscriptions(t *testing.T) {
	c := newConn(users.User{ID: uuid.New()}, &fakeSocket{}, 1, testLogger().WithField("from", "test"))

	_, ok := c.Area()
	assert.False(t, ok)

	c.handleInbound([]byte(`{"type":"SUBSCRIBE_TO_AREA","latitude":51.5,"longitude":-0.1,"radius":25}`))
	area, ok := c.Area()
	require.True(t, ok)
	assert.Equal(t, 25.0, area.Radius)

	c.handleInbound([]byte(`{"type":"SUBSCRIBE_TO_LEAGUE","league":"Sunday League","ageGroup":"U12"}`))
	c.handleInbound([]byte(`{"type":"SUBSCRIBE_TO_LEAGUE","league":"sunday  league","ageGroup":"u12"}`))
	assert.Len(t, c.Leagues(), 1)

	// Garbage and unknown types are logged and dropped.
	c.handleInbound([]byte(`{not json`))
	c.handleInbound([]byte(`{"type":"NO_SUCH_TYPE"}`))
}
