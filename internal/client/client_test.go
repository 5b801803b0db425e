package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crisvega/userhub/internal/cache"
	"github.com/crisvega/userhub/internal/client"
	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/crisvega/userhub/internal/http/handlers"
	"github.com/crisvega/userhub/internal/repo/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer mounts both resource variants the way the real router does,
// backed by the in-memory repo.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewUsersRepo()
	plain := handlers.NewUsersHandler(store, cache.NewMemory(30*time.Second))
	schema := handlers.NewSchemaUsersHandler(plain)

	r := gin.New()

	r.GET("/users", plain.ListUsers)
	r.POST("/users", plain.CreateUser)
	r.PUT("/users", plain.UpdateUser)
	r.DELETE("/users", plain.DeleteUser)

	r.GET("/users-zod", schema.ListUsers)
	r.POST("/users-zod", schema.CreateUser)
	r.PUT("/users-zod", schema.UpdateUser)
	r.DELETE("/users-zod", schema.DeleteUser)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
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

// Full pass over the validated variant: a rejected draft, a corrected one,
// a delete and the final list state.
func TestClient_SchemaVariant_FullCycle(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.VariantSchema)
	ctx := context.Background()

	// Rejected: password too short. Comes back as field errors, not a
	// transport error.
	bad := validDraft()
	bad.Password = "ab"
	bad.ConfirmPassword = "ab"

	_, fieldErrs, err := c.CreateUser(ctx, bad)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, "password", fieldErrs[0].Path)

	users, _, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users, "rejected draft must not be stored")

	// Corrected draft goes through and gets a server id.
	created, fieldErrs, err := c.CreateUser(ctx, validDraft())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Greater(t, created.ID, 0)
	assert.Empty(t, created.ConfirmPassword)

	users, msg, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Response from API", msg)

	// Update round-trips the edited record.
	edit := users[0]
	edit.FirstName = "Anabel"
	edit.ConfirmPassword = edit.Password

	updated, fieldErrs, err := c.UpdateUser(ctx, edit)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, "Anabel", updated.FirstName)

	// Delete returns the removed record and the list goes empty.
	deleted, err := c.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	users, _, err = c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestClient_PlainVariant_CreateAndList(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.VariantPlain)
	ctx := context.Background()

	created, fieldErrs, err := c.CreateUser(ctx, validDraft())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, 1, created.ID)

	// The plain variant trusts the body: a draft the rule set would reject
	// is stored as-is.
	sloppy := user.User{Login: "bob", Email: "bob@x.com", Password: "x"}

	stored, fieldErrs, err := c.CreateUser(ctx, sloppy)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, 2, stored.ID)

	users, _, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestClient_DeleteMissing_IsNotFound(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.VariantPlain)

	_, err := c.DeleteUser(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, user.ErrNotFound))
}

func TestClient_UpdateMissing_IsNotFound(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.VariantPlain)

	ghost := validDraft()
	ghost.ID = 42

	_, _, err := c.UpdateUser(context.Background(), ghost)
	require.Error(t, err)
	assert.True(t, errors.Is(err, user.ErrNotFound))
}
