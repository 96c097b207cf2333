// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/prepcoach/prepcoach/internal/domain"
)

// Repository defines the interface for persisting sessions and tasks.
// Lookups return (nil, nil) when the record does not exist.
type Repository interface {
	// GetSession retrieves a conversation session by its ID.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// SaveSession creates or updates a session record.
	SaveSession(ctx context.Context, sess *domain.Session) error

	// DeleteSession removes a session record.
	DeleteSession(ctx context.Context, sessionID string) error

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)

	// SaveTask creates or updates a task record.
	SaveTask(ctx context.Context, t *domain.Task) error

	// DeleteTask removes a task record.
	DeleteTask(ctx context.Context, taskID string) error

	// ListTasks returns all persisted tasks, used to rebuild the registry
	// on startup.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
