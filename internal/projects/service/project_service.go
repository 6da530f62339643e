package service

import (
	"context"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, name string, description *string) (*domain.Project, error) {
	return s.repo.Create(ctx, name, description)
}

// CreateWithTodos creates a project together with its initial todos
func (s *ProjectService) CreateWithTodos(ctx context.Context, name string, description *string, todos []domain.NewTodo) (*domain.ProjectWithTodos, error) {
	return s.repo.CreateWithTodos(ctx, name, description, todos)
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) GetWithTodos(ctx context.Context, id int64) (*domain.ProjectWithTodos, error) {
	return s.repo.GetWithTodos(ctx, id)
}

// Update applies a partial update to a project
func (s *ProjectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a project and, through the store, its todos
func (s *ProjectService) Delete(ctx context.Context, id int64) (*domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
