package commands_test

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"tareas/internal/commands"
	"tareas/internal/exitcode"
	"tareas/internal/session"
)

// newFlagSet parses flags the way the dispatcher does.
func newFlagSet(cmd commands.Command) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	return fs
}

// runAuthCommand executes cmd against an auth backend answering with
// the given status and body. A non-empty record seeds a session first.
func runAuthCommand(t *testing.T, cmd commands.Command, record string, status int, body string) (code int, out, errOut string, sessions *session.Store) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cfg := testCfg(t)
	cfg.API.AuthURL = srv.URL
	if record != "" {
		if err := cfg.EnsureDir(); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(cfg.SessionPath(), []byte(record), 0600); err != nil {
			t.Fatal(err)
		}
	}
	sessions = testSessions(t, cfg)

	var stdout, stderr bytes.Buffer
	code = cmd.Run(context.Background(), cfg, sessions, nil, nil, &stdout, &stderr)
	return code, stdout.String(), stderr.String(), sessions
}

func TestLogin(t *testing.T) {
	cmd := &commands.LoginCmd{}
	cmd.SetCredentials("alice", "secret")

	code, out, errOut, sessions := runAuthCommand(t, cmd, "", http.StatusOK, `{"token":"tok-1","username":"alice"}`)
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr: %s)", code, errOut)
	}
	if out != "ok\n" {
		t.Errorf("unexpected output: %q", out)
	}
	if !sessions.Authenticated() {
		t.Error("expected a persisted session after login")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	cmd := &commands.LoginCmd{}
	cmd.SetCredentials("alice", "wrong")

	code, _, errOut, sessions := runAuthCommand(t, cmd, "", http.StatusUnauthorized, `{"message":"bad credentials"}`)
	if code != exitcode.AuthError {
		t.Errorf("expected auth error code, got %d", code)
	}
	if !strings.Contains(errOut, "please check your credentials") {
		t.Errorf("expected the credentials hint, got %q", errOut)
	}
	if sessions.Authenticated() {
		t.Error("failed login must not persist a session")
	}
}

func TestLogin_ServerDownIsBackendError(t *testing.T) {
	cmd := &commands.LoginCmd{}
	cmd.SetCredentials("alice", "secret")

	code, _, _, _ := runAuthCommand(t, cmd, "", http.StatusInternalServerError, "")
	if code != exitcode.BackendError {
		t.Errorf("expected backend error code, got %d", code)
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	code, _, errOut, _ := runAuthCommand(t, &commands.LoginCmd{}, "", http.StatusOK, "{}")
	if code != exitcode.UserError {
		t.Errorf("expected user error code, got %d", code)
	}
	if errOut != "error: username and password required\n" {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestLogout(t *testing.T) {
	code, out, _, sessions := runAuthCommand(t, &commands.LogoutCmd{}, `{"token":"tok-1","username":"alice"}`, http.StatusOK, "{}")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if out != "ok\n" {
		t.Errorf("unexpected output: %q", out)
	}
	if sessions.Authenticated() {
		t.Error("expected the session cleared")
	}
}

func TestLogout_NotLoggedIn(t *testing.T) {
	code, out, _, _ := runAuthCommand(t, &commands.LogoutCmd{}, "", http.StatusOK, "{}")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if out != "not logged in\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRegister(t *testing.T) {
	cmd := &commands.RegisterCmd{}
	fs := newFlagSet(cmd)
	if err := fs.Parse([]string{"--username", "alice", "--password", "secret"}); err != nil {
		t.Fatal(err)
	}

	code, out, errOut, sessions := runAuthCommand(t, cmd, "", http.StatusCreated, `{"message":"created"}`)
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr: %s)", code, errOut)
	}
	if out != "ok\n" {
		t.Errorf("unexpected output: %q", out)
	}
	if sessions.Authenticated() {
		t.Error("register must not log in")
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	cmd := &commands.RegisterCmd{}
	fs := newFlagSet(cmd)
	if err := fs.Parse([]string{"-u", "alice", "-p", "secret"}); err != nil {
		t.Fatal(err)
	}

	code, _, errOut, _ := runAuthCommand(t, cmd, "", http.StatusConflict, `{"message":"taken"}`)
	if code != exitcode.BackendError {
		t.Errorf("expected backend error code, got %d", code)
	}
	if !strings.Contains(errOut, "backend error") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestWhoami(t *testing.T) {
	code, out, _, _ := runAuthCommand(t, &commands.WhoamiCmd{}, `{"token":"tok-1","username":"alice"}`, http.StatusOK, "{}")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if out != "alice\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	code, out, _, _ := runAuthCommand(t, &commands.WhoamiCmd{}, "", http.StatusOK, "{}")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if out != "not logged in\n" {
		t.Errorf("unexpected output: %q", out)
	}
}
