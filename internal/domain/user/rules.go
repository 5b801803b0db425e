package user

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is the structured validation error item the API reports and the
// form attaches to inputs.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// one shared rule set; both the form pre-check and the server-side
// enforcement go through it so the two cannot drift
var schema = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report paths by json name, not Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")

		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}

// Validate runs the full schema over a draft and returns one error per
// violated rule, tagged to the offending field.
func Validate(u User) []FieldError {
	err := schema.Struct(u)

	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) {
		return []FieldError{{Path: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:    fe.Field(),
			Message: ruleMessage(fe.Field(), fe.Tag(), fe.Param()),
		})
	}

	return out
}

// ValidateBasic is the lighter pre-submit check of the plain form variant:
// login and email present, password at least 3 characters.
func ValidateBasic(u User) []FieldError {
	var out []FieldError

	if u.Login == "" {
		out = append(out, FieldError{Path: "login", Message: "Login can't be empty"})
	}

	if u.Email == "" {
		out = append(out, FieldError{Path: "email", Message: "Email can't be empty"})
	}

	if len(u.Password) < 3 {
		out = append(out, FieldError{Path: "password", Message: "Password must be 3 characters or more"})
	}

	return out
}

var fieldLabels = map[string]string{
	"id":              "Id",
	"firstName":       "First name",
	"lastName":        "Last name",
	"login":           "Login",
	"email":           "Email",
	"age":             "Age",
	"password":        "Password",
	"confirmPassword": "Confirm Password",
}

func ruleMessage(path, rule, param string) string {
	label, ok := fieldLabels[path]

	if !ok {
		label = path
	}

	switch rule {
	case "required":
		return label + " can't be empty"
	case "min":
		// numeric fields reuse the empty-value wording
		if path == "id" || path == "age" {
			return label + " can't be empty"
		}

		return label + " must be " + param + " characters or more"
	case "max":
		return label + " must be less than or equal to " + param
	case "eqfield":
		return "The passwords do not match"
	default:
		if param != "" {
			return fmt.Sprintf("%s failed %s validation (%s)", label, rule, param)
		}

		return label + " failed " + rule + " validation"
	}
}
