package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tareas/internal/config"
	"tareas/internal/controller"
	"tareas/internal/exitcode"
	"tareas/internal/output"
	"tareas/internal/service"
	"tareas/internal/session"
	"tareas/internal/ui"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tareas` (no args) and `tareas list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "tareas list [common flags]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, repo service.Repository, args []string, out, errOut io.Writer) int {
	log := config.NewLogger(cfg.Debug, errOut)
	surface := &ui.TerminalSurface{Out: out, ErrOut: errOut, Quiet: cfg.Quiet}
	list := controller.NewList(repo, surface, log)

	if err := list.Load(ctx); err != nil {
		return reportRemoteErr(errOut, err)
	}

	tasks := list.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}
