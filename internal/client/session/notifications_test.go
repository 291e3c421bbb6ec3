package session

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedController(t *testing.T) (*Controller, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 18, 9, 30, 0, 0, time.UTC))
	c := New(&fakeAuth{}, &fakePrefs{}, WithClock(clock))
	t.Cleanup(c.Close)
	return c, clock
}

func messages(ns []Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}

func waitForMessages(t *testing.T, c *Controller, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(want, messages(c.Notifications()))
	}, time.Second, 5*time.Millisecond, "want %v, have %v", want, messages(c.Notifications()))
}

func TestAddNotification_ExpiresAfterTTL(t *testing.T) {
	c, clock := newClockedController(t)

	id := c.AddNotification("saved")
	require.NotEmpty(t, id)

	ns := c.Notifications()
	require.Len(t, ns, 1)
	assert.Equal(t, id, ns[0].ID)
	assert.Equal(t, clock.Now(), ns[0].CreatedAt)

	clock.Advance(DefaultNotificationTTL - time.Millisecond)
	assert.Equal(t, []string{"saved"}, messages(c.Notifications()))

	clock.Advance(time.Millisecond)
	waitForMessages(t, c)
}

func TestAddNotification_IndependentTimers(t *testing.T) {
	c, clock := newClockedController(t)

	c.AddNotification("first")
	clock.Advance(time.Second)
	c.AddNotification("second")
	assert.Equal(t, []string{"first", "second"}, messages(c.Notifications()))

	clock.Advance(2 * time.Second)
	waitForMessages(t, c, "second")

	clock.Advance(time.Second)
	waitForMessages(t, c)
}

func TestAddNotification_DuplicatesAreDistinct(t *testing.T) {
	c, _ := newClockedController(t)

	a := c.AddNotification("same")
	b := c.AddNotification("same")

	assert.NotEqual(t, a, b)
	assert.Equal(t, []string{"same", "same"}, messages(c.Notifications()))
}

func TestAddNotification_BlankIsNoop(t *testing.T) {
	c, _ := newClockedController(t)

	assert.Empty(t, c.AddNotification(""))
	assert.Empty(t, c.AddNotification("  \t"))
	assert.Empty(t, c.Notifications())
}

func TestDismissNotification(t *testing.T) {
	c, clock := newClockedController(t)

	keep := c.AddNotification("keep")
	drop := c.AddNotification("drop")

	assert.True(t, c.DismissNotification(drop))
	assert.False(t, c.DismissNotification(drop))
	assert.False(t, c.DismissNotification("unknown"))
	assert.Equal(t, []string{"keep"}, messages(c.Notifications()))

	clock.Advance(DefaultNotificationTTL)
	waitForMessages(t, c)
	assert.False(t, c.DismissNotification(keep))
}

func TestWithNotificationTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(&fakeAuth{}, &fakePrefs{}, WithClock(clock), WithNotificationTTL(10*time.Second))
	t.Cleanup(c.Close)

	c.AddNotification("long")
	clock.Advance(DefaultNotificationTTL)
	assert.Len(t, c.Notifications(), 1)

	clock.Advance(7 * time.Second)
	waitForMessages(t, c)
}

func TestClose_StopsTimersAndIgnoresLaterNotifications(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(&fakeAuth{}, &fakePrefs{}, WithClock(clock))

	c.AddNotification("pending")
	c.Close()

	assert.Empty(t, c.Notifications())
	assert.Empty(t, c.AddNotification("late"))
	assert.Empty(t, c.Notifications())

	clock.Advance(DefaultNotificationTTL)
	assert.Empty(t, c.Notifications())
}
