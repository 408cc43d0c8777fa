package ports

import (
	"context"

	"github.com/taskloop/todo-api/internal/core/domain"
)

// Pagination describes the page window returned by a paginated list call.
type Pagination struct {
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	CurrentPage     int   `json:"currentPage"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// TodoPage is the result of a List call. Pagination is nil when the caller
// did not request pagination, in which case Items holds the full list.
type TodoPage struct {
	Items      []*domain.Todo
	Pagination *Pagination
}

// ListTodosInput carries the parameters for the list endpoint. Page and
// Limit are zero when absent or unparsable; pagination only applies when
// both are positive.
type ListTodosInput struct {
	OwnerID string
	Page    int
	Limit   int
}

// TodoService defines the use-case operations on to-do items. Every call is
// parameterized by the authenticated caller's user id; the service never
// touches a todo owned by someone else.
type TodoService interface {
	Create(ctx context.Context, ownerID, title, description string) (*domain.Todo, error)
	List(ctx context.Context, input ListTodosInput) (*TodoPage, error)
	Update(ctx context.Context, ownerID, id, title, description string) (*domain.Todo, error)
	Delete(ctx context.Context, ownerID, id string) error
}
