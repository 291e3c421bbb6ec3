package session

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/skillsphere/internal/logging"
)

// DefaultNotificationTTL is how long a notification stays in the queue.
const DefaultNotificationTTL = 3 * time.Second

type Option func(*Controller)

func WithNavigator(n Navigator) Option {
	return func(c *Controller) {
		if n != nil {
			c.nav = n
		}
	}
}

// WithClock replaces the wall clock; tests pass a clockwork.FakeClock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNotificationTTL overrides DefaultNotificationTTL. Non-positive values are ignored.
func WithNotificationTTL(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.ttl = d
		}
	}
}
