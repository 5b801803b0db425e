package handlers

import (
	"errors"
	"net/http"

	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// SchemaUsersHandler serves the /users-zod variant: the full rule set runs
// before anything touches the store, and rule violations come back as a 200
// with an errors list. The response is discriminated by payload shape, not
// by status: either {errors: [...]} or the success key.
type SchemaUsersHandler struct {
	plain *UsersHandler
}

func NewSchemaUsersHandler(plain *UsersHandler) *SchemaUsersHandler {
	return &SchemaUsersHandler{plain: plain}
}

// ListUsers and DeleteUser behave exactly like the plain variant.
func (h *SchemaUsersHandler) ListUsers(ctx *gin.Context)  { h.plain.ListUsers(ctx) }
func (h *SchemaUsersHandler) DeleteUser(ctx *gin.Context) { h.plain.DeleteUser(ctx) }

func (h *SchemaUsersHandler) CreateUser(ctx *gin.Context) {
	var draft user.User

	if !BindJSON(ctx, &draft) {
		return
	}

	if errs := user.Validate(draft); len(errs) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": errs})
		return
	}

	// confirmPassword is a form-only field and stops here
	draft.ConfirmPassword = ""

	created, err := h.plain.store.Create(ctx.Request.Context(), draft)

	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	h.plain.invalidate(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"userRegistered": created,
		"message":        msgCreated,
	})
}

func (h *SchemaUsersHandler) UpdateUser(ctx *gin.Context) {
	var draft user.User

	if !BindJSON(ctx, &draft) {
		return
	}

	if errs := user.Validate(draft); len(errs) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": errs})
		return
	}

	if draft.ID == 0 {
		RespondBadRequest(ctx, "id is required", nil)
		return
	}

	draft.ConfirmPassword = ""

	updated, err := h.plain.store.Update(ctx.Request.Context(), draft)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not update user")
		return
	}

	h.plain.invalidate(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"userUpdated": updated,
		"message":     msgUpdated,
	})
}
