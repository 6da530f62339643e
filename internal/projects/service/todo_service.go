package service

import (
	"context"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/repository"
)

// DefaultPageLimit is used when a page request does not name a limit.
const DefaultPageLimit = 10

type TodoService struct {
	repo *repository.TodoRepository
}

func NewTodoService(repo *repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, projectID int64, title string, description *string) (*domain.Todo, error) {
	return s.repo.Create(ctx, projectID, title, description)
}

func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.repo.GetAll(ctx)
}

func (s *TodoService) ListByProject(ctx context.Context, projectID int64) ([]domain.Todo, error) {
	return s.repo.GetByProjectID(ctx, projectID)
}

// ListPage returns one page of a project's todos. A nil cursor starts from
// the beginning and a nil limit means DefaultPageLimit.
func (s *TodoService) ListPage(ctx context.Context, projectID int64, cursor *int64, limit *int) (*domain.TodoPage, error) {
	var c int64
	if cursor != nil {
		c = *cursor
	}
	l := DefaultPageLimit
	if limit != nil {
		l = *limit
	}
	return s.repo.GetByProjectIDPaginated(ctx, projectID, c, l)
}

func (s *TodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TodoService) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *TodoService) Delete(ctx context.Context, id int64) (*domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

func (s *TodoService) Toggle(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.repo.Toggle(ctx, id)
}
