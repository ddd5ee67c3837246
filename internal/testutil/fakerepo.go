// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"tareas/internal/service"
)

// FakeUsername is the session username stamped by the fake repository.
const FakeUsername = "testuser"

// ErrNotFound is a 404 rejection, matching what the real backend returns.
var ErrNotFound = service.NewStatusError(404, "")

// FakeRepository is an in-memory implementation of service.Repository
// for testing. Call counters allow asserting that no remote call was
// made.
type FakeRepository struct {
	mu    sync.RWMutex
	tasks []service.Task

	// Error injection for testing
	GetTasksErr    error
	GetTaskByIDErr error
	CreateTaskErr  error
	UpdateTaskErr  error
	DeleteTaskErr  error

	// Call counters
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewFakeRepository creates an empty FakeRepository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

// AddTask seeds a task.
func (f *FakeRepository) AddTask(id, titulo, descripcion string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Titulo:      titulo,
		Descripcion: descripcion,
		Username:    FakeUsername,
	})
}

// GetTasks implements service.Repository.
func (f *FakeRepository) GetTasks(ctx context.Context) ([]service.Task, error) {
	if f.GetTasksErr != nil {
		return nil, f.GetTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// GetTaskByID implements service.Repository.
func (f *FakeRepository) GetTaskByID(ctx context.Context, id string) (service.Task, error) {
	if f.GetTaskByIDErr != nil {
		return service.Task{}, f.GetTaskByIDErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, ErrNotFound
}

// CreateTask implements service.Repository. Like the real backend it
// assigns a fresh id and stamps the username before storing.
func (f *FakeRepository) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	f.mu.Lock()
	f.CreateCalls++
	f.mu.Unlock()
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}

	task.ID = uuid.NewString()
	task.Username = FakeUsername

	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Repository.
func (f *FakeRepository) UpdateTask(ctx context.Context, task service.Task) error {
	f.mu.Lock()
	f.UpdateCalls++
	f.mu.Unlock()
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == task.ID {
			f.tasks[i].Titulo = task.Titulo
			f.tasks[i].Descripcion = task.Descripcion
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements service.Repository.
func (f *FakeRepository) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	f.DeleteCalls++
	f.mu.Unlock()
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
