package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalSurface binds Surface to a terminal: notifications go to the
// output writers and OpenConfirm reads a y/N answer from In, delivering
// it through OnChoice. AssumeYes answers confirm prompts without
// reading (rm --force).
type TerminalSurface struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Quiet suppresses success notifications.
	Quiet bool

	// AssumeYes confirms prompts without asking.
	AssumeYes bool

	// OnChoice receives the answer of an open confirm prompt.
	OnChoice func(Choice)
}

// Notify implements Surface.
func (s *TerminalSurface) Notify(kind NoticeKind, title, description string) {
	if kind == NoticeError {
		fmt.Fprintf(s.ErrOut, "error: %s: %s\n", title, description)
		return
	}
	if !s.Quiet {
		fmt.Fprintln(s.Out, description)
	}
}

// OpenConfirm implements Surface. Only one prompt can be open at a
// time on a terminal; the answer is delivered before OpenConfirm
// returns.
func (s *TerminalSurface) OpenConfirm(title, subtitle string) {
	if s.OnChoice == nil {
		return
	}
	if s.AssumeYes {
		s.OnChoice(ChoiceConfirm)
		return
	}

	fmt.Fprintf(s.ErrOut, "%s\n%s [y/N]: ", title, subtitle)

	answer := ""
	scanner := bufio.NewScanner(s.In)
	if scanner.Scan() {
		answer = strings.ToLower(strings.TrimSpace(scanner.Text()))
	}

	if answer == "y" || answer == "yes" {
		s.OnChoice(ChoiceConfirm)
		return
	}
	s.OnChoice(ChoiceCancel)
}
