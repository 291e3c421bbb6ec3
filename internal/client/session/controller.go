package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/skillsphere/internal/logging"
)

// Controller owns the session state. The zero value is not usable; call New.
//
// Every mutation takes mu, builds a snapshot and calls subscribers after
// releasing it. Credential writes to the PreferenceStore happen under mu so
// the stored token always matches the latest identity transition. Backend
// calls never hold mu.
type Controller struct {
	auth  Authenticator
	prefs PreferenceStore
	nav   Navigator
	clock clockwork.Clock
	log   logging.Logger
	ttl   time.Duration

	mu            sync.Mutex
	identity      *Identity
	theme         Theme
	notifications []Notification
	timers        map[string]clockwork.Timer
	form          AuthForm
	epoch         uint64
	closed        bool

	subs    map[int]func(State)
	nextSub int
}

func New(auth Authenticator, prefs PreferenceStore, opts ...Option) *Controller {
	c := &Controller{
		auth:   auth,
		prefs:  prefs,
		nav:    NavigatorFunc(func(string) {}),
		clock:  clockwork.NewRealClock(),
		log:    logging.Nop(),
		ttl:    DefaultNotificationTTL,
		theme:  ThemeLight,
		timers: make(map[string]clockwork.Timer),
		form:   AuthForm{Mode: AuthModeLogin},
		subs:   make(map[int]func(State)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Subscribe registers fn to receive a snapshot after every mutation. fn runs
// on the mutating goroutine (notification expiry runs on a timer goroutine)
// and must not block. Snapshots carry Epoch; when two arrive out of order,
// the higher Epoch and the current State() win.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// update runs fn under the lock and publishes the resulting state.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	s, subs := c.snapshotLocked()
	c.mu.Unlock()
	publish(s, subs)
}

func (c *Controller) snapshotLocked() (State, []func(State)) {
	s := c.stateLocked()

	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(State), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, c.subs[id])
	}
	return s, subs
}

func (c *Controller) stateLocked() State {
	s := State{
		Theme:         c.theme,
		Notifications: append([]Notification(nil), c.notifications...),
		AuthForm:      c.form,
		Epoch:         c.epoch,
	}
	if c.identity != nil {
		id := *c.identity
		s.Identity = &id
	}
	return s
}

func publish(s State, subs []func(State)) {
	for _, fn := range subs {
		fn(s)
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Identity returns a copy of the current identity.
func (c *Controller) Identity() (Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == nil {
		return Identity{}, false
	}
	return *c.identity, true
}

// Token returns the bearer credential of the authenticated identity.
func (c *Controller) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == nil || c.identity.Token == "" {
		return "", false
	}
	return c.identity.Token, true
}

// Credential returns the bearer credential together with the epoch it
// belongs to, for use with GuardEpoch.
func (c *Controller) Credential() (token string, epoch uint64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == nil || c.identity.Token == "" {
		return "", c.epoch, false
	}
	return c.identity.Token, c.epoch, true
}

func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// Notifications returns the queue, oldest first.
func (c *Controller) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.notifications...)
}

func (c *Controller) AuthForm() AuthForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Epoch changes on every identity transition. Views capture it before an
// async fetch and drop the result when IsCurrent reports false.
func (c *Controller) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

func (c *Controller) IsCurrent(epoch uint64) bool {
	return c.Epoch() == epoch
}

// ToggleTheme flips and persists the theme and returns the new value.
func (c *Controller) ToggleTheme() Theme {
	var next Theme
	c.update(func() {
		next = c.theme.Toggle()
		c.theme = next
		if c.identity != nil {
			id := *c.identity
			id.Theme = next
			c.identity = &id
		}
		if err := c.prefs.SaveTheme(context.Background(), string(next)); err != nil {
			c.log.Warn(context.Background(), "failed to persist theme", "theme", next, "error", err)
		}
	})
	return next
}

func (c *Controller) OpenAuthForm(mode AuthMode) {
	c.update(func() {
		c.form = AuthForm{Visible: true, Mode: normalizeMode(mode)}
	})
}

// CloseAuthForm hides the form and drops its error; the mode is kept.
func (c *Controller) CloseAuthForm() {
	c.update(func() {
		c.form = AuthForm{Mode: c.form.Mode}
	})
}

func (c *Controller) SetAuthMode(mode AuthMode) {
	c.update(func() {
		c.form.Mode = normalizeMode(mode)
		c.form.Error = ""
	})
}

func normalizeMode(m AuthMode) AuthMode {
	if m == AuthModeRegister {
		return AuthModeRegister
	}
	return AuthModeLogin
}

// Close stops every pending notification timer and empties the queue.
// Later notifications are ignored.
func (c *Controller) Close() {
	c.update(func() {
		c.closed = true
		for id, t := range c.timers {
			t.Stop()
			delete(c.timers, id)
		}
		c.notifications = nil
	})
}
