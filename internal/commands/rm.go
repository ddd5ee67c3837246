package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"tareas/internal/config"
	"tareas/internal/controller"
	"tareas/internal/exitcode"
	"tareas/internal/service"
	"tareas/internal/session"
	"tareas/internal/ui"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command: a staged delete. The task is only
// removed after the confirm prompt is answered with yes (or --force).
type RmCmd struct {
	force bool
	in    io.Reader
}

// SetInput sets the confirm-prompt input (for testing).
func (c *RmCmd) SetInput(in io.Reader) {
	c.in = in
}

// SetForce sets the force flag (for testing).
func (c *RmCmd) SetForce(force bool) {
	c.force = force
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "tareas rm [common flags] [--force] <number|id>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, repo service.Repository, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	ref := args[0]

	log := config.NewLogger(cfg.Debug, errOut)
	surface := &ui.TerminalSurface{In: c.in, Out: out, ErrOut: errOut, Quiet: cfg.Quiet, AssumeYes: c.force}
	list := controller.NewList(repo, surface, log)

	if err := list.Load(ctx); err != nil {
		return reportRemoteErr(errOut, err)
	}

	id, code := resolveTaskRef(list.Tasks(), ref, errOut)
	if code != exitcode.Success {
		return code
	}

	// Wire the prompt answer back into the controller, then stage the
	// delete. With a terminal surface the answer arrives synchronously.
	var deleted bool
	var delErr error
	surface.OnChoice = func(choice ui.Choice) {
		deleted, delErr = list.HandleModalButtonClick(ctx, choice)
	}
	list.ConfirmDelete(id)

	if delErr != nil {
		return reportRemoteErr(errOut, delErr)
	}
	if !deleted {
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveTaskRef resolves a task reference against the loaded list.
// An all-digits reference is a 1-based position; anything else is
// taken as a task id, which must be present in the list.
func resolveTaskRef(tasks []service.Task, ref string, errOut io.Writer) (string, int) {
	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num < 1 || num > len(tasks) {
			fmt.Fprintf(errOut, "error: task number out of range: %s\n", ref)
			return "", exitcode.UserError
		}
		return tasks[num-1].ID, exitcode.Success
	}

	for _, t := range tasks {
		if t.ID == ref {
			return t.ID, exitcode.Success
		}
	}
	fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
	return "", exitcode.UserError
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
