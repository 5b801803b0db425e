// Package observed decorates a users store with DB-level metrics.
package observed

import (
	"context"

	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/crisvega/userhub/internal/observability"
)

type UsersStore interface {
	List(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Update(ctx context.Context, u user.User) (user.User, error)
	Delete(ctx context.Context, id int) (user.User, error)
}

type Users struct {
	inner UsersStore
	prom  *observability.Prom
}

func NewUsers(inner UsersStore, prom *observability.Prom) *Users {
	return &Users{inner: inner, prom: prom}
}

func (s *Users) List(ctx context.Context) ([]user.User, error) {
	var out []user.User

	err := s.prom.ObserveDB("users.list", func() error {
		var err error
		out, err = s.inner.List(ctx)
		return err
	})

	return out, err
}

func (s *Users) Create(ctx context.Context, u user.User) (user.User, error) {
	var out user.User

	err := s.prom.ObserveDB("users.create", func() error {
		var err error
		out, err = s.inner.Create(ctx, u)
		return err
	})

	return out, err
}

func (s *Users) Update(ctx context.Context, u user.User) (user.User, error) {
	var out user.User

	err := s.prom.ObserveDB("users.update", func() error {
		var err error
		out, err = s.inner.Update(ctx, u)
		return err
	})

	return out, err
}

func (s *Users) Delete(ctx context.Context, id int) (user.User, error) {
	var out user.User

	err := s.prom.ObserveDB("users.delete", func() error {
		var err error
		out, err = s.inner.Delete(ctx, id)
		return err
	})

	return out, err
}
