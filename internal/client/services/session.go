package services

import (
	"context"

	"github.com/dmitrijs2005/skillsphere/internal/client/session"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// Session is the part of *session.Controller the services depend on.
type Session interface {
	Credential() (token string, epoch uint64, ok bool)
	Identity() (session.Identity, bool)
	GuardEpoch(epoch uint64, err error) error
}

var _ Session = (*session.Controller)(nil)

// authorized runs fn with the current credential and guards its error.
func authorized[T any](ctx context.Context, s Session, fn func(ctx context.Context, token string) (T, error)) (T, error) {
	var zero T
	token, epoch, ok := s.Credential()
	if !ok {
		return zero, common.ErrNotAuthenticated
	}
	out, err := fn(ctx, token)
	if err != nil {
		return zero, s.GuardEpoch(epoch, err)
	}
	return out, nil
}

// optional is authorized for endpoints that also answer anonymous callers.
func optional[T any](ctx context.Context, s Session, fn func(ctx context.Context, token string) (T, error)) (T, error) {
	token, epoch, ok := s.Credential()
	out, err := fn(ctx, token)
	if err != nil && ok {
		return out, s.GuardEpoch(epoch, err)
	}
	return out, err
}

// exec is authorized for calls without a result.
func exec(ctx context.Context, s Session, fn func(ctx context.Context, token string) error) error {
	_, err := authorized(ctx, s, func(ctx context.Context, token string) (struct{}, error) {
		return struct{}{}, fn(ctx, token)
	})
	return err
}

// currentUser returns the identity or common.ErrNotAuthenticated.
func currentUser(s Session) (session.Identity, error) {
	id, ok := s.Identity()
	if !ok {
		return session.Identity{}, common.ErrNotAuthenticated
	}
	return id, nil
}
