package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tareas/internal/config"
	"tareas/internal/exitcode"
	"tareas/internal/service"
	"tareas/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tareas help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, repo service.Repository, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tareas                                             List your tasks
  tareas list [common flags]                         List your tasks
  tareas add [common flags] --desc <d> <titulo...>   Create a task
  tareas edit [common flags] [--titulo <t>] [--desc <d>] <id>
  tareas show [common flags] <id>                    Print one task
  tareas rm [common flags] [--force] <number|id>     Delete a task (asks first)
  tareas register [common flags] --username <u> --password <p>
  tareas login [common flags] --username <u> --password <p>
  tareas logout [common flags]
  tareas whoami [common flags]
  tareas help
  tareas version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
