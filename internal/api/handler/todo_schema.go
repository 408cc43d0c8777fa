package handler

import (
	"time"

	"github.com/taskloop/todo-api/internal/core/domain"
	"github.com/taskloop/todo-api/internal/core/ports"
)

type todoRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
}

// todoResponse is the transport view of a todo, intentionally separate from
// the domain type so the JSON contract is not coupled to internal changes.
type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type paginationResponse struct {
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	CurrentPage     int   `json:"currentPage"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type listTodosResponse struct {
	Data       []todoResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

func toTodoResponses(todos []*domain.Todo) []todoResponse {
	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return out
}

func toListResponse(page *ports.TodoPage) listTodosResponse {
	return listTodosResponse{
		Data: toTodoResponses(page.Items),
		Pagination: paginationResponse{
			TotalItems:      page.Pagination.TotalItems,
			TotalPages:      page.Pagination.TotalPages,
			CurrentPage:     page.Pagination.CurrentPage,
			ItemsPerPage:    page.Pagination.ItemsPerPage,
			HasNextPage:     page.Pagination.HasNextPage,
			HasPreviousPage: page.Pagination.HasPreviousPage,
		},
	}
}
