package form

import "github.com/crisvega/userhub/internal/domain/user"

// Result carries the canonical record a successful write returned; exactly
// one field is set.
type Result struct {
	Registered *user.User
	Updated    *user.User
	Deleted    *user.User
}

// ApplyServerResult folds a server result into the local list mirror and
// returns a fresh slice; the input is never mutated. Appends on register,
// replaces by id on update, removes by id on delete. An update or delete
// whose id is not in the list leaves it as-is.
func ApplyServerResult(list []user.User, res Result) []user.User {
	switch {
	case res.Registered != nil:
		out := make([]user.User, 0, len(list)+1)
		out = append(out, list...)
		return append(out, *res.Registered)

	case res.Updated != nil:
		out := make([]user.User, len(list))

		for i, u := range list {
			if u.ID == res.Updated.ID {
				out[i] = *res.Updated
			} else {
				out[i] = u
			}
		}

		return out

	case res.Deleted != nil:
		out := make([]user.User, 0, len(list))

		for _, u := range list {
			if u.ID != res.Deleted.ID {
				out = append(out, u)
			}
		}

		return out
	}

	out := make([]user.User, len(list))
	copy(out, list)
	return out
}
