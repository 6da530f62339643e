package domain

import "time"

// Project groups a list of todos. Deleting a project deletes its todos.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Todo struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"projectId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTodo is one todo inside a composite project create.
type NewTodo struct {
	Title       string
	Description *string
}

// ProjectPatch holds the fields of a partial project update. Nil means
// "leave unchanged".
type ProjectPatch struct {
	Name        *string
	Description *string
}

type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

type ProjectWithTodos struct {
	Project Project `json:"project"`
	Todos   []Todo  `json:"todos"`
}

// TodoPage is one page of a cursor scan. NextCursor is nil on the last page.
type TodoPage struct {
	Todos      []Todo `json:"todos"`
	NextCursor *int64 `json:"nextCursor"`
}

type DeleteResult struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
