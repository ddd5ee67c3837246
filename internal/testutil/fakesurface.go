package testutil

import (
	"sync"

	"tareas/internal/ui"
)

// Notice is one recorded notification.
type Notice struct {
	Kind        ui.NoticeKind
	Title       string
	Description string
}

// FakeSurface records notifications and confirm prompts. When OnChoice
// is set, an opened confirm prompt is answered immediately with Answer,
// mirroring how the terminal surface delivers its callback.
type FakeSurface struct {
	mu       sync.Mutex
	Notices  []Notice
	Confirms []string

	// Answer is delivered through OnChoice when a prompt opens.
	Answer ui.Choice

	// OnChoice receives the answer; nil leaves prompts unanswered so
	// tests can drive the handler themselves.
	OnChoice func(ui.Choice)
}

// NewFakeSurface creates a surface that leaves prompts unanswered.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{Answer: ui.ChoiceCancel}
}

// Notify implements ui.Surface.
func (f *FakeSurface) Notify(kind ui.NoticeKind, title, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Notices = append(f.Notices, Notice{Kind: kind, Title: title, Description: description})
}

// OpenConfirm implements ui.Surface.
func (f *FakeSurface) OpenConfirm(title, subtitle string) {
	f.mu.Lock()
	f.Confirms = append(f.Confirms, title)
	onChoice := f.OnChoice
	answer := f.Answer
	f.mu.Unlock()

	if onChoice != nil {
		onChoice(answer)
	}
}

// LastNotice returns the most recent notification, ok=false when none.
func (f *FakeSurface) LastNotice() (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Notices) == 0 {
		return Notice{}, false
	}
	return f.Notices[len(f.Notices)-1], true
}
