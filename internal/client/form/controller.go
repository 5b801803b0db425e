// Package form holds the client-side state machine behind the user form:
// the list mirror, the current draft, validation errors and the two-phase
// delete confirmation.
package form

import (
	"context"

	"github.com/crisvega/userhub/internal/domain/user"
)

// API is the transport surface the controller drives. Field errors are data,
// not errors: the transport error return is reserved for network and server
// failures.
type API interface {
	ListUsers(ctx context.Context) ([]user.User, string, error)
	CreateUser(ctx context.Context, draft user.User) (user.User, []user.FieldError, error)
	UpdateUser(ctx context.Context, draft user.User) (user.User, []user.FieldError, error)
	DeleteUser(ctx context.Context, id int) (user.User, error)
}

// Mode selects which pre-submit check runs locally.
type Mode int

const (
	// ModeBasic mirrors the hand-rolled form: login/email presence and
	// password length only.
	ModeBasic Mode = iota
	// ModeSchema runs the full rule set before contacting the server.
	ModeSchema
)

type Options struct {
	Mode Mode
	// UniquePrecheck scans the cached list for login/email collisions
	// before submitting.
	UniquePrecheck bool
}

type Controller struct {
	api  API
	opts Options

	users         []user.User
	draft         user.User
	errs          []user.FieldError
	isEdit        bool
	pendingDelete int
}

func NewController(api API, opts Options) *Controller {
	return &Controller{api: api, opts: opts}
}

// Users returns the local list mirror. It only changes through Load and
// successful writes; concurrent edits by others are invisible until the
// next Load.
func (c *Controller) Users() []user.User {
	out := make([]user.User, len(c.users))
	copy(out, c.users)
	return out
}

func (c *Controller) Draft() user.User           { return c.draft }
func (c *Controller) Errors() []user.FieldError  { return c.errs }
func (c *Controller) IsEdit() bool               { return c.isEdit }
func (c *Controller) PendingDelete() (int, bool) { return c.pendingDelete, c.pendingDelete != 0 }

// SetDraft replaces the draft wholesale; the CLI collects the fields and
// hands them over in one go.
func (c *Controller) SetDraft(u user.User) {
	c.draft = u
}

// Load refetches the whole list. On failure the state is left untouched and
// the caller decides how to surface it.
func (c *Controller) Load(ctx context.Context) error {
	users, _, err := c.api.ListUsers(ctx)

	if err != nil {
		return err
	}

	c.users = users
	return nil
}

// Submit validates the draft and then creates or updates depending on the
// edit flag. Validation problems (local or server-reported) land in Errors
// and keep the current state; only transport failures return an error.
func (c *Controller) Submit(ctx context.Context) error {
	c.errs = nil

	var local []user.FieldError

	if c.opts.Mode == ModeSchema {
		local = user.Validate(c.draft)
	} else {
		local = user.ValidateBasic(c.draft)
	}

	if len(local) == 0 && c.opts.UniquePrecheck {
		local = user.CheckUnique(c.users, c.draft)
	}

	if len(local) > 0 {
		c.errs = local
		return nil
	}

	if c.isEdit {
		updated, fieldErrs, err := c.api.UpdateUser(ctx, c.draft)

		if err != nil {
			return err
		}

		if len(fieldErrs) > 0 {
			c.errs = fieldErrs
			return nil
		}

		c.users = ApplyServerResult(c.users, Result{Updated: &updated})
	} else {
		created, fieldErrs, err := c.api.CreateUser(ctx, c.draft)

		if err != nil {
			return err
		}

		if len(fieldErrs) > 0 {
			c.errs = fieldErrs
			return nil
		}

		c.users = ApplyServerResult(c.users, Result{Registered: &created})
	}

	c.reset()
	return nil
}

// Edit copies a cached record into the draft and switches to edit mode.
// ConfirmPassword is preloaded with the stored password so the full rule
// set does not flag an untouched form as a mismatch.
func (c *Controller) Edit(id int) bool {
	for _, u := range c.users {
		if u.ID == id {
			c.errs = nil
			c.draft = u
			c.draft.ConfirmPassword = u.Password
			c.isEdit = true
			return true
		}
	}

	return false
}

// Delete is two-phase: the first call only stages the target so the
// presentation can ask for confirmation; the confirmed call issues the
// request and drops the record from the mirror.
func (c *Controller) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		c.pendingDelete = id
		return nil
	}

	deleted, err := c.api.DeleteUser(ctx, id)

	if err != nil {
		return err
	}

	c.users = ApplyServerResult(c.users, Result{Deleted: &deleted})
	c.pendingDelete = 0
	return nil
}

// Cancel discards the draft and any staged delete, returning to the idle
// new-record state.
func (c *Controller) Cancel() {
	c.reset()
	c.pendingDelete = 0
}

func (c *Controller) reset() {
	c.draft = user.User{}
	c.isEdit = false
	c.errs = nil
}
