package session

import (
	"strings"

	"github.com/google/uuid"
)

// AddNotification appends msg to the queue and schedules its removal after
// the TTL. Blank messages are ignored and yield "".
func (c *Controller) AddNotification(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ""
	}

	var id string
	c.update(func() {
		id = c.addNotificationLocked(msg)
	})
	return id
}

func (c *Controller) addNotificationLocked(msg string) string {
	if c.closed || strings.TrimSpace(msg) == "" {
		return ""
	}

	id := newNotificationID()
	c.notifications = append(c.notifications, Notification{
		ID:        id,
		Message:   msg,
		CreatedAt: c.clock.Now(),
	})
	c.timers[id] = c.clock.AfterFunc(c.ttl, func() {
		c.removeNotification(id, false)
	})
	return id
}

// DismissNotification removes a notification before its timer fires.
func (c *Controller) DismissNotification(id string) bool {
	return c.removeNotification(id, true)
}

func (c *Controller) removeNotification(id string, stop bool) bool {
	c.mu.Lock()
	idx := -1
	for i, n := range c.notifications {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}

	c.notifications = append(c.notifications[:idx:idx], c.notifications[idx+1:]...)
	if t, ok := c.timers[id]; ok {
		if stop {
			t.Stop()
		}
		delete(c.timers, id)
	}
	s, subs := c.snapshotLocked()
	c.mu.Unlock()

	publish(s, subs)
	return true
}

// newNotificationID returns a time-ordered UUID.
func newNotificationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
