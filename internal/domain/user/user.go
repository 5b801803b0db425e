package user

import (
	"errors"
	"time"
)

type User struct {
	ID        int       `json:"id" validate:"min=0"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Login     string    `json:"login" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	Age       int       `json:"age" validate:"min=0,max=120"`
	Password  string    `json:"password" validate:"required,min=3"`
	// client-only; compared against Password at submission time, never stored
	ConfirmPassword string    `json:"confirmPassword,omitempty" validate:"required,min=3,eqfield=Password"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsNew reports whether the record has not been created on the server yet.
// ID 0 is the "unsaved" sentinel used by the form draft.
func (u User) IsNew() bool {
	return u.ID == 0
}

var ErrNotFound = errors.New("user not found")

// CreateUserRequest is the plain (non-validated) create payload. Fields may
// be partial; the server fills in id and timestamps.
type CreateUserRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Login     string  `json:"login"`
	Email     string  `json:"email"`
	Age       FlexInt `json:"age"`
	Password  string  `json:"password"`
}

func (r CreateUserRequest) User() User {
	return User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Login:     r.Login,
		Email:     r.Email,
		Age:       int(r.Age),
		Password:  r.Password,
	}
}

// UpdateUserRequest is the plain full-replace payload, keyed by id.
type UpdateUserRequest struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Login     string  `json:"login"`
	Email     string  `json:"email"`
	Age       FlexInt `json:"age"`
	Password  string  `json:"password"`
}

func (r UpdateUserRequest) User() User {
	return User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Login:     r.Login,
		Email:     r.Email,
		Age:       int(r.Age),
		Password:  r.Password,
	}
}
