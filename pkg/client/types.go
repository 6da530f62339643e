package client

import "time"

type Project struct {
	ID          int64     `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description *string   `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type Todo struct {
	ID          int64     `json:"id" yaml:"id"`
	ProjectID   int64     `json:"projectId" yaml:"projectId"`
	Title       string    `json:"title" yaml:"title"`
	Description *string   `json:"description" yaml:"description"`
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type ProjectWithTodos struct {
	Project Project `json:"project" yaml:"project"`
	Todos   []Todo  `json:"todos" yaml:"todos"`
}

type TodoPage struct {
	Todos      []Todo `json:"todos" yaml:"todos"`
	NextCursor *int64 `json:"nextCursor" yaml:"nextCursor"`
}

type DeleteResult struct {
	Success bool  `json:"success" yaml:"success"`
	ID      int64 `json:"id" yaml:"id"`
}

type NewTodo struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type ProjectChanges struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type TodoChanges struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
