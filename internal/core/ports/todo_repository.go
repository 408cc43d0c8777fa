package ports

import (
	"context"

	"github.com/taskloop/todo-api/internal/core/domain"
)

// ListTodosFilter carries the query parameters for listing todos.
// OwnerID is always set by the service layer; Page/Limit of zero means
// "no pagination" and the repository returns the full owner slice.
type ListTodosFilter struct {
	OwnerID string
	Page    int // 1-based
	Limit   int
}

// TodoRepository defines persistence operations for to-do items.
//
// Every lookup that targets a single todo takes the owner id and applies it
// in the same query as the id filter, so "not owned" and "does not exist"
// are indistinguishable at this boundary (both are domain.ErrTodoNotFound).
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// List returns a page of todos ordered by creation time descending,
	// plus the total count of todos owned by filter.OwnerID.
	List(ctx context.Context, filter ListTodosFilter) ([]*domain.Todo, int64, error)
	// Update overwrites title and description of the todo matching id+owner
	// and returns the updated document.
	Update(ctx context.Context, ownerID, id string, title, description string) (*domain.Todo, error)
	Delete(ctx context.Context, ownerID, id string) error
}
