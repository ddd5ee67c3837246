// Package controller holds the stateful pieces between the repository
// and the UI: the task list with its staged delete flow, and the
// create/edit form with its submit state machine.
package controller

import (
	"context"
	"log/slog"
	"sync"

	"tareas/internal/service"
	"tareas/internal/ui"
)

// List holds the current task list in memory and implements staged
// deletion: a delete is only issued after the confirm surface delivers
// a confirming choice, and the local list is only mutated after the
// remote call reports success.
type List struct {
	repo    service.Repository
	surface ui.Surface
	log     *slog.Logger

	mu            sync.Mutex
	tasks         []service.Task
	pendingDelete string
}

// NewList creates a list controller. Call Load before reading Tasks.
func NewList(repo service.Repository, surface ui.Surface, log *slog.Logger) *List {
	return &List{repo: repo, surface: surface, log: log}
}

// Load fetches the full task list and replaces the in-memory sequence.
// On failure the current list is left untouched.
func (l *List) Load(ctx context.Context) error {
	tasks, err := l.repo.GetTasks(ctx)
	if err != nil {
		l.log.Error("loading tasks failed", "error", err)
		return err
	}

	l.mu.Lock()
	l.tasks = tasks
	l.mu.Unlock()
	return nil
}

// Tasks returns a copy of the in-memory list, in server order.
func (l *List) Tasks() []service.Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]service.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// ConfirmDelete records id as the single pending-deletion candidate and
// opens the confirmation surface. No mutation happens here; the answer
// arrives through HandleModalButtonClick.
func (l *List) ConfirmDelete(id string) {
	l.mu.Lock()
	l.pendingDelete = id
	l.mu.Unlock()

	l.surface.OpenConfirm("delete task", "this task will be removed permanently")
}

// HandleModalButtonClick handles the answer of the confirm surface.
// The delete is issued only for a confirming choice with a pending id
// recorded. The pending id is cleared unconditionally once the handler
// completes, whatever the choice or outcome, so a stale id can never
// leak into a later prompt.
//
// Returns whether a task was deleted. On delete failure the list is
// left untouched and the error is returned; no retry.
func (l *List) HandleModalButtonClick(ctx context.Context, choice ui.Choice) (bool, error) {
	l.mu.Lock()
	id := l.pendingDelete
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.pendingDelete = ""
		l.mu.Unlock()
	}()

	if choice != ui.ChoiceConfirm || id == "" {
		return false, nil
	}

	if err := l.repo.DeleteTask(ctx, id); err != nil {
		l.log.Error("deleting task failed", "id", id, "error", err)
		l.surface.Notify(ui.NoticeError, "delete failed", "the task could not be deleted")
		return false, err
	}

	l.mu.Lock()
	for i, t := range l.tasks {
		if t.ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			break
		}
	}
	l.mu.Unlock()

	l.log.Debug("task deleted", "id", id)
	return true, nil
}
