// Package cli is the terminal presentation over the form controller. It
// renders the table and the form prompts; all state lives in the controller.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crisvega/userhub/internal/client/form"
	"github.com/crisvega/userhub/internal/domain/user"
)

type App struct {
	ctrl *form.Controller
	in   *bufio.Reader
	out  io.Writer
}

func NewApp(ctrl *form.Controller, in io.Reader, out io.Writer) *App {
	return &App{
		ctrl: ctrl,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run drives a read-eval-print loop until EOF or "quit".
func (a *App) Run(ctx context.Context) error {
	if err := a.ctrl.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "could not load users:", err)
	}

	for {
		fmt.Fprint(a.out, "userhub> ")

		line, err := a.in.ReadString('\n')

		if err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}

		parts := strings.Fields(line)

		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.help()
		case "list":
			a.list(ctx)
		case "add":
			a.add(ctx)
		case "edit":
			a.edit(ctx, parts[1:])
		case "delete":
			a.delete(ctx, parts[1:])
		case "cancel":
			a.ctrl.Cancel()
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintln(a.out, "unknown command; try help")
		}
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, `commands:
  list          refetch and print all users
  add           fill the form and create a user
  edit <id>     load a user into the form and update it
  delete <id>   delete a user (asks for confirmation)
  cancel        discard the current draft
  exit | quit   leave`)
}

func (a *App) list(ctx context.Context) {
	if err := a.ctrl.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "could not load users:", err)
		return
	}

	renderUsers(a.out, a.ctrl.Users())
}

func (a *App) add(ctx context.Context) {
	draft, err := a.promptDraft(user.User{})

	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	a.ctrl.SetDraft(draft)
	a.submit(ctx)
}

func (a *App) edit(ctx context.Context, args []string) {
	id, ok := parseID(a.out, args)

	if !ok {
		return
	}

	if !a.ctrl.Edit(id) {
		fmt.Fprintln(a.out, "no user with id", id)
		return
	}

	draft, err := a.promptDraft(a.ctrl.Draft())

	if err != nil {
		fmt.Fprintln(a.out, err)
		a.ctrl.Cancel()
		return
	}

	draft.ID = id
	a.ctrl.SetDraft(draft)
	a.submit(ctx)
}

func (a *App) delete(ctx context.Context, args []string) {
	id, ok := parseID(a.out, args)

	if !ok {
		return
	}

	// stage first, then confirm: the destructive call happens only after
	// an explicit yes
	if err := a.ctrl.Delete(ctx, id, false); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	answer, err := a.prompt(fmt.Sprintf("delete user %d? (y/N)", id))

	if err != nil || !strings.EqualFold(answer, "y") {
		a.ctrl.Cancel()
		fmt.Fprintln(a.out, "cancelled")
		return
	}

	if err := a.ctrl.Delete(ctx, id, true); err != nil {
		fmt.Fprintln(a.out, "could not delete:", err)
		return
	}

	fmt.Fprintln(a.out, "deleted")
	renderUsers(a.out, a.ctrl.Users())
}

func (a *App) submit(ctx context.Context) {
	if err := a.ctrl.Submit(ctx); err != nil {
		fmt.Fprintln(a.out, "request failed:", err)
		return
	}

	if errs := a.ctrl.Errors(); len(errs) > 0 {
		renderErrors(a.out, errs)
		return
	}

	fmt.Fprintln(a.out, "saved")
	renderUsers(a.out, a.ctrl.Users())
}

func parseID(out io.Writer, args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: <command> <id>")
		return 0, false
	}

	id, err := strconv.Atoi(args[0])

	if err != nil || id <= 0 {
		fmt.Fprintln(out, "id must be a positive integer")
		return 0, false
	}

	return id, true
}
