package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/crisvega/userhub/internal/domain/user"
)

func renderUsers(out io.Writer, users []user.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "(no users)")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tLOGIN\tEMAIL\tAGE")

	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			u.ID, u.FirstName, u.LastName, u.Login, u.Email, u.Age)
	}

	_ = w.Flush()
}

func renderErrors(out io.Writer, errs []user.FieldError) {
	for _, e := range errs {
		if e.Path != "" {
			fmt.Fprintf(out, "  %s: %s\n", e.Path, e.Message)
		} else {
			fmt.Fprintf(out, "  %s\n", e.Message)
		}
	}
}
