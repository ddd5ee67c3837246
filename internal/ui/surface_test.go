package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"tareas/internal/ui"
)

func TestReduceFields(t *testing.T) {
	values, err := ui.ReduceFields([]ui.Field{
		{Name: "titulo", Value: "a"},
		{Name: "descripcion", Value: "b"},
	}, "titulo", "descripcion")
	if err != nil {
		t.Fatalf("ReduceFields failed: %v", err)
	}
	if values["titulo"] != "a" || values["descripcion"] != "b" {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestReduceFields_UnknownName(t *testing.T) {
	_, err := ui.ReduceFields([]ui.Field{{Name: "prioridad", Value: "x"}}, "titulo")
	if err == nil {
		t.Error("expected unknown field name to be rejected")
	}
}

func TestReduceFields_DuplicateName(t *testing.T) {
	_, err := ui.ReduceFields([]ui.Field{
		{Name: "titulo", Value: "a"},
		{Name: "titulo", Value: "b"},
	}, "titulo")
	if err == nil {
		t.Error("expected duplicate field name to be rejected")
	}
}

func TestReduceFields_AbsentFieldOmitted(t *testing.T) {
	values, err := ui.ReduceFields([]ui.Field{{Name: "titulo", Value: "a"}}, "titulo", "descripcion")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := values["descripcion"]; ok {
		t.Error("absent fields must not appear in the result")
	}
}

func TestTerminalNotify(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &ui.TerminalSurface{Out: &out, ErrOut: &errOut}

	s.Notify(ui.NoticeSuccess, "ok", "task created")
	s.Notify(ui.NoticeError, "submit failed", "the task could not be saved")

	if out.String() != "task created\n" {
		t.Errorf("unexpected stdout: %q", out.String())
	}
	if errOut.String() != "error: submit failed: the task could not be saved\n" {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
}

func TestTerminalNotify_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &ui.TerminalSurface{Out: &out, ErrOut: &errOut, Quiet: true}

	s.Notify(ui.NoticeSuccess, "ok", "task created")
	s.Notify(ui.NoticeError, "submit failed", "the task could not be saved")

	if out.String() != "" {
		t.Errorf("quiet mode must suppress success notices, got %q", out.String())
	}
	if errOut.String() == "" {
		t.Error("quiet mode must still report errors")
	}
}

func TestTerminalConfirm(t *testing.T) {
	cases := []struct {
		answer string
		want   ui.Choice
	}{
		{"y\n", ui.ChoiceConfirm},
		{"yes\n", ui.ChoiceConfirm},
		{"Y\n", ui.ChoiceConfirm},
		{"n\n", ui.ChoiceCancel},
		{"\n", ui.ChoiceCancel},
		{"", ui.ChoiceCancel},
		{"whatever\n", ui.ChoiceCancel},
	}

	for _, tc := range cases {
		var errOut bytes.Buffer
		var got ui.Choice
		delivered := false
		s := &ui.TerminalSurface{
			In:     strings.NewReader(tc.answer),
			ErrOut: &errOut,
			OnChoice: func(c ui.Choice) {
				got = c
				delivered = true
			},
		}

		s.OpenConfirm("delete task", "this task will be removed permanently")
		if !delivered {
			t.Errorf("answer %q: choice not delivered", tc.answer)
			continue
		}
		if got != tc.want {
			t.Errorf("answer %q: expected %v, got %v", tc.answer, tc.want, got)
		}
		if !strings.Contains(errOut.String(), "[y/N]") {
			t.Errorf("answer %q: expected a prompt, got %q", tc.answer, errOut.String())
		}
	}
}

func TestTerminalConfirm_AssumeYes(t *testing.T) {
	var errOut bytes.Buffer
	var got ui.Choice
	s := &ui.TerminalSurface{
		ErrOut:    &errOut,
		AssumeYes: true,
		OnChoice:  func(c ui.Choice) { got = c },
	}

	s.OpenConfirm("delete task", "this task will be removed permanently")
	if got != ui.ChoiceConfirm {
		t.Errorf("expected immediate confirm, got %v", got)
	}
	if errOut.String() != "" {
		t.Errorf("expected no prompt, got %q", errOut.String())
	}
}
