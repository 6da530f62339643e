package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"
)

const todoColumns = `id, project_id, title, description, completed, created_at, updated_at`

// TodoRepository provides persistence operations for todos
type TodoRepository struct {
	db DBTX
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db DBTX) *TodoRepository {
	return &TodoRepository{db: db}
}

// WithTx returns a repository whose statements run inside tx.
func (r *TodoRepository) WithTx(tx *sql.Tx) *TodoRepository {
	return &TodoRepository{db: tx}
}

// Create inserts a todo. The project reference is enforced by the store.
func (r *TodoRepository) Create(ctx context.Context, projectID int64, title string, description *string) (*domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.Invalid("title", "Title is required")
	}

	const q = `
INSERT INTO todos (project_id, title, description, completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + todoColumns + `;
`
	t, err := scanTodo(r.db.QueryRowContext(ctx, q, projectID, title, description, false, now()))
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos ORDER BY id;`
	return r.list(ctx, q)
}

func (r *TodoRepository) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE project_id = $1 ORDER BY id;`
	return r.list(ctx, q, projectID)
}

func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE id = $1;`
	t, err := scanTodo(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.TodoNotFound(id)
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &t, nil
}

// Update merges the non-nil fields of patch into the todo.
func (r *TodoRepository) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.Invalid("title", "Title is required")
	}

	const q = `
UPDATE todos
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    completed = COALESCE($3, completed),
    updated_at = $4
WHERE id = $5
RETURNING ` + todoColumns + `;
`
	t, err := scanTodo(r.db.QueryRowContext(ctx, q, patch.Title, patch.Description, patch.Completed, now(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.TodoNotFound(id)
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) (*domain.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.TodoNotFound(id)
	}
	return &domain.DeleteResult{Success: true, ID: id}, nil
}

// Toggle flips completed in one statement, so concurrent toggles never
// lose an update.
func (r *TodoRepository) Toggle(ctx context.Context, id int64) (*domain.Todo, error) {
	const q = `
UPDATE todos
SET completed = NOT completed, updated_at = $1
WHERE id = $2
RETURNING ` + todoColumns + `;
`
	t, err := scanTodo(r.db.QueryRowContext(ctx, q, now(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.TodoNotFound(id)
		}
		return nil, fmt.Errorf("toggle todo: %w", err)
	}
	return &t, nil
}

// GetByProjectIDPaginated returns up to limit todos of the project with
// id > cursor, in ascending id order. One extra row is fetched to decide
// whether another page exists; NextCursor is the id of the last todo
// returned, or nil when the scan is complete.
func (r *TodoRepository) GetByProjectIDPaginated(ctx context.Context, projectID, cursor int64, limit int) (*domain.TodoPage, error) {
	if limit <= 0 {
		return nil, domain.Invalid("limit", "Limit must be a positive integer")
	}
	if cursor < 0 {
		cursor = 0
	}

	const q = `
SELECT ` + todoColumns + `
FROM todos
WHERE project_id = $1 AND id > $2
ORDER BY id ASC
LIMIT $3;
`
	todos, err := r.list(ctx, q, projectID, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	page := &domain.TodoPage{Todos: todos}
	if len(todos) > limit {
		page.Todos = todos[:limit]
		next := page.Todos[limit-1].ID
		page.NextCursor = &next
	}
	return page, nil
}

func (r *TodoRepository) list(ctx context.Context, q string, args ...any) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Todo, 0, 16)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanTodo(row rowScanner) (domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Completed,
		timestamp{&t.CreatedAt}, timestamp{&t.UpdatedAt},
	)
	return t, err
}
