package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"
)

const projectColumns = `id, name, description, created_at, updated_at`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db    *sql.DB
	todos *TodoRepository
}

// NewProjectRepository creates a new project repository. todos is used by
// the composite create and by GetWithTodos.
func NewProjectRepository(db *sql.DB, todos *TodoRepository) *ProjectRepository {
	return &ProjectRepository{db: db, todos: todos}
}

// Create inserts a new project.
func (r *ProjectRepository) Create(ctx context.Context, name string, description *string) (*domain.Project, error) {
	return insertProject(ctx, r.db, name, description)
}

// CreateWithTodos inserts a project and its todos in one transaction.
// Either everything is persisted or nothing is. Todos come back in input
// order.
func (r *ProjectRepository) CreateWithTodos(ctx context.Context, name string, description *string, todos []domain.NewTodo) (*domain.ProjectWithTodos, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := insertProject(ctx, tx, name, description)
	if err != nil {
		return nil, err
	}

	txTodos := r.todos.WithTx(tx)
	out := make([]domain.Todo, 0, len(todos))
	for _, nt := range todos {
		t, err := txTodos.Create(ctx, p.ID, nt.Title, nt.Description)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.ProjectWithTodos{Project: *p, Todos: out}, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY id;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ProjectNotFound(id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// GetWithTodos fetches the project and then every todo it owns.
func (r *ProjectRepository) GetWithTodos(ctx context.Context, id int64) (*domain.ProjectWithTodos, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	todos, err := r.todos.GetByProjectID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectWithTodos{Project: *p, Todos: todos}, nil
}

// Update merges the non-nil fields of patch into the project.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domain.Invalid("name", "Name is required")
	}

	const q = `
UPDATE projects
SET name = COALESCE($1, name),
    description = COALESCE($2, description),
    updated_at = $3
WHERE id = $4
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, patch.Name, patch.Description, now(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ProjectNotFound(id)
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &p, nil
}

// Delete removes the project. The store cascades the delete to its todos.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (*domain.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ProjectNotFound(id)
	}
	return &domain.DeleteResult{Success: true, ID: id}, nil
}

func insertProject(ctx context.Context, db DBTX, name string, description *string) (*domain.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Invalid("name", "Name is required")
	}

	const q = `
INSERT INTO projects (name, description, created_at, updated_at)
VALUES ($1, $2, $3, $3)
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(db.QueryRowContext(ctx, q, name, description, now()))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

func scanProject(row rowScanner) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, timestamp{&p.CreatedAt}, timestamp{&p.UpdatedAt})
	return p, err
}
