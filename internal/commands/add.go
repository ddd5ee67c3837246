package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"tareas/internal/config"
	"tareas/internal/controller"
	"tareas/internal/exitcode"
	"tareas/internal/service"
	"tareas/internal/session"
	"tareas/internal/ui"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command: the task form in create mode.
type AddCmd struct {
	descripcion string
}

// SetDescripcion sets the description (for testing).
func (c *AddCmd) SetDescripcion(d string) {
	c.descripcion = d
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "tareas add [common flags] --desc <descripcion> <titulo...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.descripcion, "desc", "", "")
	fs.StringVar(&c.descripcion, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, repo service.Repository, args []string, out, errOut io.Writer) int {
	titulo := strings.TrimSpace(strings.Join(args, " "))

	log := config.NewLogger(cfg.Debug, errOut)
	surface := &ui.TerminalSurface{Out: out, ErrOut: errOut, Quiet: cfg.Quiet}
	form := controller.NewForm(repo, surface, log)
	form.Activate(ctx, "")

	if err := form.SetFields([]ui.Field{
		{Name: "titulo", Value: titulo},
		{Name: "descripcion", Value: c.descripcion},
	}); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	return submitForm(ctx, form, errOut)
}

// submitForm runs the form submit and maps the outcome to an exit code.
// Shared by add and edit.
func submitForm(ctx context.Context, form *controller.Form, errOut io.Writer) int {
	err := form.Submit(ctx)
	if err == nil {
		return exitcode.Success
	}
	if errors.Is(err, controller.ErrFormInvalid) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	// The surface already carried the user-facing notice; map the
	// remote failure to an exit code without printing twice.
	if errors.Is(err, service.ErrAuth) {
		return exitcode.AuthError
	}
	return exitcode.BackendError
}
