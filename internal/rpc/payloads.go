package rpc

import "github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"

// Operation names accepted in the "method" field of a request.
const (
	MethodProjectCreate          = "ProjectCreate"
	MethodProjectCreateWithTodos = "ProjectCreateWithTodos"
	MethodProjectGetAll          = "ProjectGetAll"
	MethodProjectGetByID         = "ProjectGetById"
	MethodProjectGetWithTodos    = "ProjectGetWithTodos"
	MethodProjectUpdate          = "ProjectUpdate"
	MethodProjectDelete          = "ProjectDelete"

	MethodTodoCreate                  = "TodoCreate"
	MethodTodoGetAll                  = "TodoGetAll"
	MethodTodoGetByProjectID          = "TodoGetByProjectId"
	MethodTodoGetByID                 = "TodoGetById"
	MethodTodoUpdate                  = "TodoUpdate"
	MethodTodoDelete                  = "TodoDelete"
	MethodTodoToggle                  = "TodoToggle"
	MethodTodoGetByProjectIDPaginated = "TodoGetByProjectIdPaginated"
)

type idPayload struct {
	ID int64 `json:"id" binding:"gt=0"`
}

type projectCreatePayload struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type newTodoPayload struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type projectCreateWithTodosPayload struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	Todos       []newTodoPayload `json:"todos" binding:"dive"`
}

func (p projectCreateWithTodosPayload) newTodos() []domain.NewTodo {
	out := make([]domain.NewTodo, 0, len(p.Todos))
	for _, t := range p.Todos {
		out = append(out, domain.NewTodo{Title: t.Title, Description: t.Description})
	}
	return out
}

type projectUpdatePayload struct {
	ID   int64 `json:"id" binding:"gt=0"`
	Data struct {
		Name        *string `json:"name" binding:"omitnil,min=1"`
		Description *string `json:"description"`
	} `json:"data"`
}

type todoCreatePayload struct {
	ProjectID   int64   `json:"projectId" binding:"gt=0"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type projectIDPayload struct {
	ProjectID int64 `json:"projectId" binding:"gt=0"`
}

type todoUpdatePayload struct {
	ID   int64 `json:"id" binding:"gt=0"`
	Data struct {
		Title       *string `json:"title" binding:"omitnil,min=1"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	} `json:"data"`
}

type todoPagePayload struct {
	ProjectID int64  `json:"projectId" binding:"gt=0"`
	Cursor    *int64 `json:"cursor"`
	Limit     *int   `json:"limit" binding:"omitnil,gt=0"`
}
