package user

// CheckUnique scans a locally cached list for another record colliding with
// the draft on login or email. The draft's own record (matching id) is
// exempt so an edit can keep its unchanged login/email.
//
// This only sees the caller's last-fetched snapshot; the table itself
// carries no uniqueness constraint.
func CheckUnique(users []User, draft User) []FieldError {
	var out []FieldError

	for _, u := range users {
		if u.ID == draft.ID {
			continue
		}

		if draft.Login != "" && u.Login == draft.Login {
			out = append(out, FieldError{Path: "login", Message: "Login is already registered"})
			break
		}
	}

	for _, u := range users {
		if u.ID == draft.ID {
			continue
		}

		if draft.Email != "" && u.Email == draft.Email {
			out = append(out, FieldError{Path: "email", Message: "Email is already registered"})
			break
		}
	}

	return out
}
