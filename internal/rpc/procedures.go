package rpc

import (
	"context"
	"encoding/json"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"
)

func (h *Handler) routes() map[string]procedure {
	return map[string]procedure{
		MethodProjectCreate:          h.projectCreate,
		MethodProjectCreateWithTodos: h.projectCreateWithTodos,
		MethodProjectGetAll:          h.projectGetAll,
		MethodProjectGetByID:         h.projectGetByID,
		MethodProjectGetWithTodos:    h.projectGetWithTodos,
		MethodProjectUpdate:          h.projectUpdate,
		MethodProjectDelete:          h.projectDelete,

		MethodTodoCreate:                  h.todoCreate,
		MethodTodoGetAll:                  h.todoGetAll,
		MethodTodoGetByProjectID:          h.todoGetByProjectID,
		MethodTodoGetByID:                 h.todoGetByID,
		MethodTodoUpdate:                  h.todoUpdate,
		MethodTodoDelete:                  h.todoDelete,
		MethodTodoToggle:                  h.todoToggle,
		MethodTodoGetByProjectIDPaginated: h.todoGetByProjectIDPaginated,
	}
}

func (h *Handler) projectCreate(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[projectCreatePayload](raw)
	if err != nil {
		return nil, err
	}
	return h.projects.Create(ctx, p.Name, p.Description)
}

func (h *Handler) projectCreateWithTodos(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[projectCreateWithTodosPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.projects.CreateWithTodos(ctx, p.Name, p.Description, p.newTodos())
}

func (h *Handler) projectGetAll(ctx context.Context, _ json.RawMessage) (any, error) {
	return h.projects.List(ctx)
}

func (h *Handler) projectGetByID(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[idPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.projects.Get(ctx, p.ID)
}

func (h *Handler) projectGetWithTodos(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[idPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.projects.GetWithTodos(ctx, p.ID)
}

func (h *Handler) projectUpdate(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[projectUpdatePayload](raw)
	if err != nil {
		return nil, err
	}
	return h.projects.Update(ctx, p.ID, domain.ProjectPatch{
		Name:        p.Data.Name,
		Description: p.Data.Description,
	})
}

func (h *Handler) projectDelete(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[idPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.projects.Delete(ctx, p.ID)
}

func (h *Handler) todoCreate(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[todoCreatePayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.Create(ctx, p.ProjectID, p.Title, p.Description)
}

func (h *Handler) todoGetAll(ctx context.Context, _ json.RawMessage) (any, error) {
	return h.todos.List(ctx)
}

func (h *Handler) todoGetByProjectID(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[projectIDPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.ListByProject(ctx, p.ProjectID)
}

func (h *Handler) todoGetByID(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[idPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.Get(ctx, p.ID)
}

func (h *Handler) todoUpdate(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[todoUpdatePayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.Update(ctx, p.ID, domain.TodoPatch{
		Title:       p.Data.Title,
		Description: p.Data.Description,
		Completed:   p.Data.Completed,
	})
}

func (h *Handler) todoDelete(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[idPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.Delete(ctx, p.ID)
}

func (h *Handler) todoToggle(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[idPayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.Toggle(ctx, p.ID)
}

func (h *Handler) todoGetByProjectIDPaginated(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := decode[todoPagePayload](raw)
	if err != nil {
		return nil, err
	}
	return h.todos.ListPage(ctx, p.ProjectID, p.Cursor, p.Limit)
}
