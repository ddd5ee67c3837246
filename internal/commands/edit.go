package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tareas/internal/config"
	"tareas/internal/controller"
	"tareas/internal/exitcode"
	"tareas/internal/service"
	"tareas/internal/session"
	"tareas/internal/ui"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: the task form in edit mode. The
// stored task prefills the fields; flags override them. A failed
// prefill fetch is not fatal, the submit only needs the id.
type EditCmd struct {
	titulo      string
	descripcion string
}

// SetFields sets the field overrides (for testing).
func (c *EditCmd) SetFields(titulo, descripcion string) {
	c.titulo = titulo
	c.descripcion = descripcion
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Update a task" }
func (c *EditCmd) Usage() string {
	return "tareas edit [common flags] [--titulo <t>] [--desc <d>] <id>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.titulo, "titulo", "", "")
	fs.StringVar(&c.titulo, "t", "", "")
	fs.StringVar(&c.descripcion, "desc", "", "")
	fs.StringVar(&c.descripcion, "d", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, repo service.Repository, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	id := args[0]

	log := config.NewLogger(cfg.Debug, errOut)
	surface := &ui.TerminalSurface{Out: out, ErrOut: errOut, Quiet: cfg.Quiet}
	form := controller.NewForm(repo, surface, log)
	form.Activate(ctx, id)

	// Empty flag values keep whatever the prefill fetch loaded.
	var fields []ui.Field
	if c.titulo != "" {
		fields = append(fields, ui.Field{Name: "titulo", Value: c.titulo})
	}
	if c.descripcion != "" {
		fields = append(fields, ui.Field{Name: "descripcion", Value: c.descripcion})
	}
	if err := form.SetFields(fields); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	return submitForm(ctx, form, errOut)
}
