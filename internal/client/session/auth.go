package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// ErrSuperseded is returned by Revalidate when the session changed while
// the backend call was in flight; its result was discarded.
var ErrSuperseded = errors.New("session changed during revalidation")

var (
	errNoToken = errors.New("backend returned no token")
	errNoUser  = errors.New("backend returned no user")
)

// Initialize loads the persisted theme and credential. It returns at once;
// the credential is re-validated in the background and the returned
// channel is closed when that settles.
func (c *Controller) Initialize(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	theme, err := c.prefs.LoadTheme(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to load theme", "error", err)
	}
	token, err := c.prefs.LoadToken(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to load token", "error", err)
	}

	var epoch uint64
	c.update(func() {
		c.theme = ParseTheme(theme)
		epoch = c.epoch
	})

	if token == "" {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				c.log.Error(ctx, "revalidation panicked", "panic", r)
			}
		}()
		if err := c.revalidate(ctx, token, epoch); err != nil {
			c.log.Info(ctx, "stored session not restored", "error", err)
		}
	}()
	return done
}

// Revalidate checks the stored credential against the backend and restores
// the identity on success. On failure the stored credential is cleared.
func (c *Controller) Revalidate(ctx context.Context) error {
	token, err := c.prefs.LoadToken(ctx)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		return nil
	}
	return c.revalidate(ctx, token, c.Epoch())
}

func (c *Controller) revalidate(ctx context.Context, token string, epoch uint64) error {
	var (
		me  *models.CurrentUser
		err error
	)
	if tokenExpired(token, c.clock.Now()) {
		err = common.ErrTokenExpired
	} else {
		me, err = c.auth.Me(ctx, token)
		if err == nil && me == nil {
			err = errNoUser
		}
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return ErrSuperseded
	}

	if err != nil {
		c.identity = nil
		c.epoch++
		c.clearTokenLocked(ctx)
	} else {
		c.identity = &Identity{
			ID:       me.UserID,
			Username: me.Username,
			Token:    token,
			IsAdmin:  me.IsAdmin,
			Theme:    c.theme,
		}
		c.epoch++
	}
	s, subs := c.snapshotLocked()
	c.mu.Unlock()
	publish(s, subs)

	if err != nil {
		return fmt.Errorf("revalidate: %w", err)
	}
	c.log.Info(ctx, "session restored", "user_id", me.UserID, "admin", me.IsAdmin)
	return nil
}

// Login authenticates and establishes the session. On failure the returned
// error is an *ActionError carrying the message shown to the user and the
// identity is left untouched.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	resp, err := c.auth.Login(ctx, username, password)
	if err == nil && (resp == nil || resp.Token == "") {
		err = errNoToken
	}
	if err != nil {
		return c.fail(ctx, "login", err, MsgLoginFailed)
	}

	id := Identity{ID: resp.UserID, Username: resp.Username, Token: resp.Token, IsAdmin: resp.IsAdmin}
	c.establish(ctx, id, MsgLoggedIn)
	c.log.Info(ctx, "logged in", "user_id", id.ID, "admin", id.IsAdmin)

	if id.IsAdmin {
		c.nav.Navigate(RouteAdmin)
	} else {
		c.nav.Navigate(ProfileRoute(id.ID))
	}
	return nil
}

// Register creates an account and establishes the session. New identities
// are never admin.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	resp, err := c.auth.Register(ctx, username, password)
	if err == nil && (resp == nil || resp.Token == "") {
		err = errNoToken
	}
	if err != nil {
		return c.fail(ctx, "register", err, MsgRegisterFailed)
	}

	id := Identity{ID: resp.UserID, Username: resp.Username, Token: resp.Token}
	c.establish(ctx, id, MsgRegistered)
	c.log.Info(ctx, "registered", "user_id", id.ID)

	c.nav.Navigate(ProfileRoute(id.ID))
	return nil
}

func (c *Controller) establish(ctx context.Context, id Identity, msg string) {
	c.update(func() {
		if err := c.prefs.SaveToken(ctx, id.Token); err != nil {
			c.log.Warn(ctx, "failed to persist token, session kept in memory", "error", err)
		}
		id.Theme = c.theme
		c.identity = &id
		c.epoch++
		c.form = AuthForm{Mode: c.form.Mode}
		c.addNotificationLocked(msg)
	})
}

// fail records a failed login/register. Validation failures stay on the
// form; everything else is also surfaced as a notification.
func (c *Controller) fail(ctx context.Context, op string, err error, fallback string) error {
	msg := client.MessageOf(err, fallback)
	c.log.Info(ctx, op+" failed", "error", err)

	c.update(func() {
		c.form.Error = msg
		if !common.IsValidation(err) {
			c.addNotificationLocked(msg)
		}
	})
	return &ActionError{Op: op, Message: msg, Err: err}
}

// Logout ends the session. It never fails and may be called repeatedly.
func (c *Controller) Logout() {
	ctx := context.Background()
	c.update(func() {
		c.identity = nil
		c.epoch++
		c.clearTokenLocked(ctx)
		c.addNotificationLocked(MsgLoggedOut)
	})
	c.log.Info(ctx, "logged out")
	c.nav.Navigate(RouteHome)
}

// ExpireSession is the transition for an authorization-denied answer: the
// session is dropped and the login form is reopened with a notice.
func (c *Controller) ExpireSession() {
	c.expire(func(uint64) bool { return true })
}

func (c *Controller) expire(current func(epoch uint64) bool) {
	ctx := context.Background()
	expired := false
	c.update(func() {
		if !current(c.epoch) {
			return
		}
		expired = true
		c.identity = nil
		c.epoch++
		c.clearTokenLocked(ctx)
		c.form = AuthForm{Visible: true, Mode: AuthModeLogin, Error: MsgSessionExpired}
		c.addNotificationLocked(MsgSessionExpired)
	})
	if !expired {
		return
	}
	c.log.Warn(ctx, "session expired")
	c.nav.Navigate(RouteHome)
}

// Guard expires the session when err reports authorization denied and
// returns err unchanged.
func (c *Controller) Guard(err error) error {
	if err != nil && errors.Is(err, client.ErrUnauthorized) {
		c.ExpireSession()
	}
	return err
}

// GuardEpoch is Guard for a call made with a credential from epoch: a
// denial that arrives after the session already changed is ignored.
func (c *Controller) GuardEpoch(epoch uint64, err error) error {
	if err != nil && errors.Is(err, client.ErrUnauthorized) {
		c.expire(func(current uint64) bool { return current == epoch })
	}
	return err
}

func (c *Controller) clearTokenLocked(ctx context.Context) {
	if err := c.prefs.ClearToken(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
}
