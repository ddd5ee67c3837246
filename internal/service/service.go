package service

import "context"

// Repository defines the interface for remote task operations.
// All portal API calls go through this interface.
// Controllers and commands never touch the HTTP layer directly.
type Repository interface {
	// GetTasks returns the authenticated user's tasks, filtered
	// server-side by username, in the order the server returned them.
	// Requires a current session.
	GetTasks(ctx context.Context) ([]Task, error)

	// GetTaskByID fetches a single task.
	GetTaskByID(ctx context.Context, id string) (Task, error)

	// CreateTask assigns a fresh id, stamps the session username and
	// sends the task. The returned Task is the one that was sent; the
	// server acknowledgement is not read back.
	CreateTask(ctx context.Context, task Task) (Task, error)

	// UpdateTask sends titulo and descripcion for the task with the
	// given id. The id and username are not part of the payload.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask deletes a task. The caller owns any list mutation
	// resulting from success or failure.
	DeleteTask(ctx context.Context, id string) error
}
