package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tareas/internal/config"
	"tareas/internal/exitcode"
	"tareas/internal/service"
	"tareas/internal/session"
	"tareas/internal/ui"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	username string
	password string
}

// SetCredentials sets the credentials (for testing).
func (c *LoginCmd) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with the task portal" }
func (c *LoginCmd) Usage() string {
	return "tareas login [common flags] --username <u> --password <p>"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Store, repo service.Repository, args []string, out, errOut io.Writer) int {
	creds, code := parseCredentials(c.username, c.password, errOut)
	if code != exitcode.Success {
		return code
	}

	surface := &ui.TerminalSurface{Out: out, ErrOut: errOut, Quiet: cfg.Quiet}

	if err := sessions.Login(ctx, creds.Username, creds.Password); err != nil {
		surface.Notify(ui.NoticeError, "login failed", "please check your credentials")
		if errors.Is(err, service.ErrNetwork) || errors.Is(err, service.ErrServer) {
			return exitcode.BackendError
		}
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// parseCredentials validates the username/password pair as a typed
// field submission. Both fields are required.
func parseCredentials(username, password string, errOut io.Writer) (service.Credentials, int) {
	fields := []ui.Field{
		{Name: "username", Value: username},
		{Name: "password", Value: password},
	}
	values, err := ui.ReduceFields(fields, "username", "password")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Credentials{}, exitcode.UserError
	}
	if values["username"] == "" || values["password"] == "" {
		fmt.Fprintln(errOut, "error: username and password required")
		return service.Credentials{}, exitcode.UserError
	}
	return service.Credentials{Username: values["username"], Password: values["password"]}, exitcode.Success
}
