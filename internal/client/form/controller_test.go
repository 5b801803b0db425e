package form

import (
	"context"
	"errors"
	"testing"

	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI drives the controller without a server. Unset fns behave like a
// server that accepts everything.
type fakeAPI struct {
	listFn   func(ctx context.Context) ([]user.User, string, error)
	createFn func(ctx context.Context, draft user.User) (user.User, []user.FieldError, error)
	updateFn func(ctx context.Context, draft user.User) (user.User, []user.FieldError, error)
	deleteFn func(ctx context.Context, id int) (user.User, error)

	createCalls int
	deleteCalls int
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]user.User, string, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}

	return []user.User{}, "Response from API", nil
}

func (f *fakeAPI) CreateUser(ctx context.Context, draft user.User) (user.User, []user.FieldError, error) {
	f.createCalls++

	if f.createFn != nil {
		return f.createFn(ctx, draft)
	}

	draft.ID = 1
	return draft, nil, nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, draft user.User) (user.User, []user.FieldError, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, draft)
	}

	return draft, nil, nil
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id int) (user.User, error) {
	f.deleteCalls++

	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}

	return user.User{ID: id}, nil
}

func validDraft() user.User {
	return user.User{
		FirstName:       "Ana",
		LastName:        "Brito",
		Login:           "ana",
		Email:           "ana@x.com",
		Age:             30,
		Password:        "abc",
		ConfirmPassword: "abc",
	}
}

func TestController_SubmitCreate_Success(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, Options{Mode: ModeSchema})

	c.SetDraft(validDraft())
	require.NoError(t, c.Submit(context.Background()))

	assert.Empty(t, c.Errors())
	require.Len(t, c.Users(), 1)
	assert.Equal(t, 1, c.Users()[0].ID)

	// back to the idle new-record state
	assert.Equal(t, user.User{}, c.Draft())
	assert.False(t, c.IsEdit())
}

func TestController_Submit_LocalRulesBlockTheCall(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, Options{Mode: ModeSchema})

	bad := validDraft()
	bad.Password = "ab"
	bad.ConfirmPassword = "ab"
	c.SetDraft(bad)

	require.NoError(t, c.Submit(context.Background()))

	assert.NotEmpty(t, c.Errors())
	assert.Equal(t, 0, api.createCalls, "invalid draft must not reach the api")
	assert.Equal(t, bad, c.Draft(), "draft is kept for correction")
}

func TestController_Submit_BasicModeIsLooser(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, Options{Mode: ModeBasic})

	// no first name and no confirm password: the basic checks let it pass
	c.SetDraft(user.User{Login: "ana", Email: "ana@x.com", Password: "abc"})

	require.NoError(t, c.Submit(context.Background()))
	assert.Empty(t, c.Errors())
	assert.Equal(t, 1, api.createCalls)
}

func TestController_Submit_ServerFieldErrorsLand(t *testing.T) {
	api := &fakeAPI{
		createFn: func(ctx context.Context, draft user.User) (user.User, []user.FieldError, error) {
			return user.User{}, []user.FieldError{{Path: "age", Message: "Age must be less than or equal to 120"}}, nil
		},
	}

	c := NewController(api, Options{Mode: ModeBasic})
	c.SetDraft(user.User{Login: "ana", Email: "ana@x.com", Password: "abc"})

	require.NoError(t, c.Submit(context.Background()))

	require.Len(t, c.Errors(), 1)
	assert.Equal(t, "age", c.Errors()[0].Path)
	assert.Empty(t, c.Users(), "a rejected submit must not touch the mirror")
}

func TestController_Submit_TransportErrorReturned(t *testing.T) {
	boom := errors.New("connection refused")

	api := &fakeAPI{
		createFn: func(ctx context.Context, draft user.User) (user.User, []user.FieldError, error) {
			return user.User{}, nil, boom
		},
	}

	c := NewController(api, Options{Mode: ModeSchema})
	c.SetDraft(validDraft())

	err := c.Submit(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, validDraft(), c.Draft(), "draft survives a transport failure")
}

func TestController_UniquePrecheck(t *testing.T) {
	api := &fakeAPI{
		listFn: func(ctx context.Context) ([]user.User, string, error) {
			return []user.User{
				{ID: 1, Login: "ana", Email: "ana@x.com", Password: "abc"},
			}, "", nil
		},
	}

	c := NewController(api, Options{Mode: ModeSchema, UniquePrecheck: true})
	require.NoError(t, c.Load(context.Background()))

	t.Run("colliding_login_blocked", func(t *testing.T) {
		dup := validDraft()
		dup.Email = "other@x.com"
		c.SetDraft(dup)

		require.NoError(t, c.Submit(context.Background()))

		require.NotEmpty(t, c.Errors())
		assert.Equal(t, "login", c.Errors()[0].Path)
		assert.Equal(t, 0, api.createCalls)
	})

	t.Run("self_update_allowed", func(t *testing.T) {
		require.True(t, c.Edit(1))

		draft := c.Draft()
		draft.FirstName = "Ana"
		draft.LastName = "Brito"
		draft.Age = 30
		c.SetDraft(draft)

		require.NoError(t, c.Submit(context.Background()))
		assert.Empty(t, c.Errors(), "a record may keep its own login and email")
	})
}

func TestController_Edit(t *testing.T) {
	api := &fakeAPI{
		listFn: func(ctx context.Context) ([]user.User, string, error) {
			return []user.User{{ID: 3, Login: "ana", Email: "ana@x.com", Password: "abc"}}, "", nil
		},
	}

	c := NewController(api, Options{Mode: ModeSchema})
	require.NoError(t, c.Load(context.Background()))

	assert.False(t, c.Edit(99), "unknown id")

	require.True(t, c.Edit(3))
	assert.True(t, c.IsEdit())
	assert.Equal(t, "abc", c.Draft().Password)
	assert.Equal(t, "abc", c.Draft().ConfirmPassword, "confirm is preloaded from the stored password")
}

func TestController_DeleteIsTwoPhase(t *testing.T) {
	api := &fakeAPI{
		listFn: func(ctx context.Context) ([]user.User, string, error) {
			return []user.User{{ID: 1, Login: "ana"}, {ID: 2, Login: "bob"}}, "", nil
		},
	}

	c := NewController(api, Options{})
	require.NoError(t, c.Load(context.Background()))

	// first call only stages
	require.NoError(t, c.Delete(context.Background(), 2, false))

	id, staged := c.PendingDelete()
	assert.True(t, staged)
	assert.Equal(t, 2, id)
	assert.Equal(t, 0, api.deleteCalls)
	assert.Len(t, c.Users(), 2)

	// confirmation issues the request and shrinks the mirror
	require.NoError(t, c.Delete(context.Background(), 2, true))

	_, staged = c.PendingDelete()
	assert.False(t, staged)
	assert.Equal(t, 1, api.deleteCalls)
	require.Len(t, c.Users(), 1)
	assert.Equal(t, 1, c.Users()[0].ID)
}

func TestController_CancelClearsEverything(t *testing.T) {
	api := &fakeAPI{
		listFn: func(ctx context.Context) ([]user.User, string, error) {
			return []user.User{{ID: 1, Login: "ana", Password: "abc"}}, "", nil
		},
	}

	c := NewController(api, Options{})
	require.NoError(t, c.Load(context.Background()))

	require.True(t, c.Edit(1))
	require.NoError(t, c.Delete(context.Background(), 1, false))

	c.Cancel()

	assert.Equal(t, user.User{}, c.Draft())
	assert.False(t, c.IsEdit())

	_, staged := c.PendingDelete()
	assert.False(t, staged)
}
