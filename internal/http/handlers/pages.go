package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/gin-gonic/gin"
)

//go:embed templates/users.html
var pageFS embed.FS

var usersPage = template.Must(template.ParseFS(pageFS, "templates/users.html"))

// PagesHandler is the server-rendered variant: same rule set, same store,
// but the table and form come back as HTML instead of JSON.
type PagesHandler struct {
	store UsersStore
}

func NewPagesHandler(store UsersStore) *PagesHandler {
	return &PagesHandler{store: store}
}

type usersPageData struct {
	Users     []user.User
	Draft     user.User
	Errors    []user.FieldError
	IsEdit    bool
	ConfirmID int
}

func (h *PagesHandler) render(ctx *gin.Context, status int, data usersPageData) {
	ctx.Status(status)
	ctx.Header("Content-Type", "text/html; charset=utf-8")

	if err := usersPage.Execute(ctx.Writer, data); err != nil {
		_ = ctx.Error(err)
	}
}

// ShowUsers renders the table plus either an empty draft, a prefilled edit
// draft (?edit=id) or the delete confirmation dialog (?confirm=id).
func (h *PagesHandler) ShowUsers(ctx *gin.Context) {
	users, err := h.store.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	data := usersPageData{Users: users}

	if v := ctx.Query("edit"); v != "" {
		id, err := strconv.Atoi(v)

		if err == nil {
			for _, u := range users {
				if u.ID == id {
					data.Draft = u
					// keep the validator quiet about the untouched password
					data.Draft.ConfirmPassword = u.Password
					data.IsEdit = true
					break
				}
			}
		}
	}

	if v := ctx.Query("confirm"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			data.ConfirmID = id
		}
	}

	h.render(ctx, http.StatusOK, data)
}

// SaveUser creates or updates depending on the id field, re-rendering the
// form with rule violations instead of touching the store.
func (h *PagesHandler) SaveUser(ctx *gin.Context) {
	draft := draftFromForm(ctx)

	if errs := user.Validate(draft); len(errs) > 0 {
		users, err := h.store.List(ctx.Request.Context())

		if err != nil {
			RespondInternal(ctx, "Could not list users")
			return
		}

		h.render(ctx, http.StatusOK, usersPageData{
			Users:  users,
			Draft:  draft,
			Errors: errs,
			IsEdit: !draft.IsNew(),
		})
		return
	}

	draft.ConfirmPassword = ""

	var err error

	if draft.IsNew() {
		_, err = h.store.Create(ctx.Request.Context(), draft)
	} else {
		_, err = h.store.Update(ctx.Request.Context(), draft)
	}

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not save user")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/view")
}

func (h *PagesHandler) DeleteUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.PostForm("id"))

	if err != nil {
		RespondBadRequest(ctx, "id must be an integer", nil)
		return
	}

	_, err = h.store.Delete(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not delete user")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/view")
}

func draftFromForm(ctx *gin.Context) user.User {
	id, _ := strconv.Atoi(ctx.PostForm("id"))
	age, _ := strconv.Atoi(ctx.PostForm("age"))

	return user.User{
		ID:              id,
		FirstName:       ctx.PostForm("firstName"),
		LastName:        ctx.PostForm("lastName"),
		Login:           ctx.PostForm("login"),
		Email:           ctx.PostForm("email"),
		Age:             age,
		Password:        ctx.PostForm("password"),
		ConfirmPassword: ctx.PostForm("confirmPassword"),
	}
}
