package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crisvega/userhub/internal/domain/user"
)

// prompt prints a label and reads one trimmed line. A partial line at EOF
// still counts.
func (a *App) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(a.out, label+"\n> "); err != nil {
		return "", err
	}

	line, err := a.in.ReadString('\n')

	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

// promptDraft walks the form fields. For edits the current value is shown
// and kept when the user just presses enter.
func (a *App) promptDraft(current user.User) (user.User, error) {
	draft := current

	fields := []struct {
		label string
		get   func() string
		set   func(string)
	}{
		{"First name", func() string { return draft.FirstName }, func(v string) { draft.FirstName = v }},
		{"Last name", func() string { return draft.LastName }, func(v string) { draft.LastName = v }},
		{"Login", func() string { return draft.Login }, func(v string) { draft.Login = v }},
		{"Email", func() string { return draft.Email }, func(v string) { draft.Email = v }},
		{"Age", func() string { return strconv.Itoa(draft.Age) }, func(v string) {
			if n, err := strconv.Atoi(v); err == nil {
				draft.Age = n
			}
		}},
		{"Password", func() string { return draft.Password }, func(v string) { draft.Password = v }},
		{"Confirm Password", func() string { return draft.ConfirmPassword }, func(v string) { draft.ConfirmPassword = v }},
	}

	for _, f := range fields {
		label := f.label

		if cur := f.get(); cur != "" && cur != "0" {
			label = fmt.Sprintf("%s [%s]", label, cur)
		}

		v, err := a.prompt(label)

		if err != nil {
			return user.User{}, err
		}

		if v != "" {
			f.set(v)
		}
	}

	return draft, nil
}
