// Package ui defines the narrow surface the controllers require from
// any user interface: a sink for notifications and a callback-driven
// confirm prompt. Core logic depends only on these, never on a
// concrete widget or terminal.
package ui

import "fmt"

// NoticeKind classifies a notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Choice is the answer delivered from a confirm prompt.
type Choice string

const (
	ChoiceConfirm Choice = "confirm"
	ChoiceCancel  Choice = "cancel"
)

// Surface is what the controllers see of the UI.
type Surface interface {
	// Notify delivers a success or error notification.
	Notify(kind NoticeKind, title, description string)

	// OpenConfirm opens a confirm/cancel prompt. The answer arrives
	// later through whatever choice callback the caller wired up;
	// OpenConfirm itself performs no mutation.
	OpenConfirm(title, subtitle string)
}

// Field is one named value from a submitted form.
type Field struct {
	Name  string
	Value string
}

// ReduceFields validates submitted fields against the expected schema
// and reduces them to a name/value map. Unknown and duplicate names are
// rejected; expected names absent from the input stay out of the map.
func ReduceFields(fields []Field, names ...string) (map[string]string, error) {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}

	values := make(map[string]string, len(names))
	for _, f := range fields {
		if !allowed[f.Name] {
			return nil, fmt.Errorf("unexpected field: %s", f.Name)
		}
		if _, dup := values[f.Name]; dup {
			return nil, fmt.Errorf("duplicate field: %s", f.Name)
		}
		values[f.Name] = f.Value
	}
	return values, nil
}
