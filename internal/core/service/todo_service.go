package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskloop/todo-api/internal/core/domain"
	"github.com/taskloop/todo-api/internal/core/ports"
)

// TodoService implements the ownership-scoped CRUD operations. Ownership is
// enforced by passing the caller's id into every repository call, never by a
// separate authorize step after the fact.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

func (s *TodoService) Create(ctx context.Context, ownerID, title, description string) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       title,
		Description: description,
		UserID:      ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID).Msg("failed to create todo")
		return nil, err
	}

	return created, nil
}

// List returns the caller's todos newest-first. When both page and limit are
// positive the result carries a pagination block; otherwise the full list is
// returned with Pagination nil. A page past the end yields an empty slice,
// not an error.
func (s *TodoService) List(ctx context.Context, input ports.ListTodosInput) (*ports.TodoPage, error) {
	paginated := input.Page > 0 && input.Limit > 0

	filter := ports.ListTodosFilter{OwnerID: input.OwnerID}
	if paginated {
		filter.Page = input.Page
		filter.Limit = input.Limit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.OwnerID).Msg("failed to list todos")
		return nil, err
	}
	if items == nil {
		items = []*domain.Todo{}
	}

	if !paginated {
		return &ports.TodoPage{Items: items}, nil
	}

	totalPages := int((total + int64(input.Limit) - 1) / int64(input.Limit))
	return &ports.TodoPage{
		Items: items,
		Pagination: &ports.Pagination{
			TotalItems:      total,
			TotalPages:      totalPages,
			CurrentPage:     input.Page,
			ItemsPerPage:    input.Limit,
			HasNextPage:     input.Page < totalPages,
			HasPreviousPage: input.Page > 1,
		},
	}, nil
}

func (s *TodoService) Update(ctx context.Context, ownerID, id, title, description string) (*domain.Todo, error) {
	return s.repo.Update(ctx, ownerID, id, title, description)
}

func (s *TodoService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
