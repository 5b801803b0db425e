package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/crisvega/userhub/internal/cache"
	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// UsersStore is the persistence gateway the handlers talk to. Create and
// Update hand back the canonical row; Delete returns the removed one.
type UsersStore interface {
	List(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Update(ctx context.Context, u user.User) (user.User, error)
	Delete(ctx context.Context, id int) (user.User, error)
}

const usersCacheKey = "users:list"

// user-facing success messages; the browser client matches on these strings
const (
	msgList    = "Response from API"
	msgCreated = "Se ha registrado con éxito"
	msgUpdated = "Se ha actualizado con éxito"
	msgDeleted = "Se ha eliminado con éxito"
)

// UsersHandler serves the plain /users variant. Success and the list are
// always 200; unlike the first iteration of this API, failures now produce
// an explicit error body with a real status instead of an empty response.
type UsersHandler struct {
	store UsersStore
	cache cache.Store
}

func NewUsersHandler(store UsersStore, c cache.Store) *UsersHandler {
	return &UsersHandler{store: store, cache: c}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	if h.cache != nil {
		if raw, ok := h.cache.Get(rctx, usersCacheKey); ok {
			RespondRawJSONWithETag(ctx, http.StatusOK, raw)
			return
		}
	}

	users, err := h.store.List(rctx)

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	raw, err := json.Marshal(gin.H{
		"users":   users,
		"message": msgList,
	})

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	if h.cache != nil {
		h.cache.Set(rctx, usersCacheKey, raw)
	}

	RespondRawJSONWithETag(ctx, http.StatusOK, raw)
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	created, err := h.store.Create(ctx.Request.Context(), req.User())

	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	h.invalidate(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"userRegistered": created,
		"message":        msgCreated,
	})
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.ID == 0 {
		RespondBadRequest(ctx, "id is required", nil)
		return
	}

	updated, err := h.store.Update(ctx.Request.Context(), req.User())

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not update user")
		return
	}

	h.invalidate(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"userUpdated": updated,
		"message":     msgUpdated,
	})
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	// id arrives as ?id=7, and some clients repeat the param; first one wins
	ids := ctx.QueryArray("id")

	if len(ids) == 0 {
		RespondBadRequest(ctx, "id query parameter is required", nil)
		return
	}

	id, err := strconv.Atoi(ids[0])

	if err != nil {
		RespondBadRequest(ctx, "id must be an integer", nil)
		return
	}

	deleted, err := h.store.Delete(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not delete user")
		return
	}

	h.invalidate(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"userDeleted": deleted,
		"message":     msgDeleted,
	})
}

func (h *UsersHandler) invalidate(ctx *gin.Context) {
	if h.cache != nil {
		h.cache.Delete(ctx.Request.Context(), usersCacheKey)
	}
}
