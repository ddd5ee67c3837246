package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"tareas/internal/service"
	"tareas/internal/ui"
)

// FormState is the form controller's lifecycle state.
type FormState int

const (
	// StateIdle means the form has not been activated yet.
	StateIdle FormState = iota

	// StateLoading means an edit-mode fetch is in flight.
	StateLoading

	// StateEditable means the form accepts field changes and a submit.
	StateEditable

	// StateSubmitting means a submit is in flight. A second submit is
	// rejected until the first settles.
	StateSubmitting

	// StateSucceeded means the last submit completed and the form was
	// reset. Navigation away is the caller's business.
	StateSucceeded
)

func (s FormState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateEditable:
		return "editable"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	}
	return "unknown"
}

var (
	// ErrFormInvalid is returned by Submit when titulo or descripcion
	// is empty. No repository call is made; the form stays editable.
	ErrFormInvalid = errors.New("titulo and descripcion are required")

	// ErrSubmitInFlight is returned when a submit arrives while one is
	// already in flight.
	ErrSubmitInFlight = errors.New("submit already in progress")

	// ErrFormNotReady is returned when Submit is called before the
	// form reached the editable state.
	ErrFormNotReady = errors.New("form is not ready")
)

// Form resolves create-vs-edit mode once at activation and drives the
// create/update workflow. An externally supplied id means edit mode;
// its absence means create mode. The mode never changes afterwards.
type Form struct {
	repo    service.Repository
	surface ui.Surface
	log     *slog.Logger

	mu          sync.Mutex
	state       FormState
	editMode    bool
	taskID      string
	titulo      string
	descripcion string
	lastError   string
}

// NewForm creates a form controller in the idle state.
func NewForm(repo service.Repository, surface ui.Surface, log *slog.Logger) *Form {
	return &Form{repo: repo, surface: surface, log: log}
}

// Activate resolves the mode and, in edit mode, fetches the task to
// populate the fields. A failed fetch is logged and leaves the form
// empty but editable: the submit path only needs the id captured here.
// Activate is a no-op after the first call.
func (f *Form) Activate(ctx context.Context, id string) {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return
	}
	f.taskID = id
	f.editMode = id != ""
	if !f.editMode {
		f.state = StateEditable
		f.mu.Unlock()
		return
	}
	f.state = StateLoading
	f.mu.Unlock()

	task, err := f.repo.GetTaskByID(ctx, id)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Error("loading task failed", "id", id, "error", err)
	} else {
		f.titulo = task.Titulo
		f.descripcion = task.Descripcion
	}
	// Fetch settled either way; the user can edit and submit.
	f.state = StateEditable
}

// State returns the current form state.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// EditMode reports whether the form was activated with an id.
func (f *Form) EditMode() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editMode
}

// Fields returns the current titulo and descripcion values.
func (f *Form) Fields() (titulo, descripcion string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.titulo, f.descripcion
}

// LastError returns the message of the last failed submit, empty after
// a success.
func (f *Form) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// SetFields applies submitted field values. Only titulo and
// descripcion are part of the schema; anything else is rejected before
// being trusted. Fields absent from the input keep their value.
func (f *Form) SetFields(fields []ui.Field) error {
	values, err := ui.ReduceFields(fields, "titulo", "descripcion")
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := values["titulo"]; ok {
		f.titulo = v
	}
	if v, ok := values["descripcion"]; ok {
		f.descripcion = v
	}
	return nil
}

// Submit validates the form and runs the create or update call. While
// the call is in flight the form is in StateSubmitting and further
// submits are rejected. Success resets the fields and signals the
// surface; failure keeps the fields intact, surfaces a generic error
// and returns the form to the editable state with the underlying error
// preserved for inspection.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case StateEditable:
		// Proceed.
	default:
		f.mu.Unlock()
		return ErrFormNotReady
	}
	if f.titulo == "" || f.descripcion == "" {
		f.mu.Unlock()
		return ErrFormInvalid
	}
	f.state = StateSubmitting
	edit := f.editMode
	task := service.Task{ID: f.taskID, Titulo: f.titulo, Descripcion: f.descripcion}
	f.mu.Unlock()

	var err error
	var action string
	if edit {
		action = "updated"
		err = f.repo.UpdateTask(ctx, task)
	} else {
		action = "created"
		_, err = f.repo.CreateTask(ctx, task)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Error("submit failed", "edit", edit, "id", task.ID, "error", err)
		f.lastError = "the task could not be saved"
		f.state = StateEditable
		f.surface.Notify(ui.NoticeError, "submit failed", f.lastError)
		return err
	}

	f.titulo = ""
	f.descripcion = ""
	f.lastError = ""
	f.state = StateSucceeded
	f.surface.Notify(ui.NoticeSuccess, "ok", "task "+action)
	return nil
}
