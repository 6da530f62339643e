package rpc

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/todo-tracker/config"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/db"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/repository"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/service"
)

type envelope struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
	Error  *ErrorBody      `json:"error"`
}

type testServer struct {
	router *gin.Engine
	store  *sql.DB
	logs   *bytes.Buffer
}

func newRouter(store *sql.DB, logs *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	todoRepo := repository.NewTodoRepository(store)
	h := New(
		service.NewProjectService(repository.NewProjectRepository(store, todoRepo)),
		service.NewTodoService(todoRepo),
		slog.New(slog.NewJSONHandler(logs, nil)),
	)

	r := gin.New()
	h.Register(r)
	return r
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	store, err := db.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: db.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	_, err = db.Migrate(ctx, store, config.DriverSQLite)
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	return &testServer{router: newRouter(store, logs), store: store, logs: logs}
}

func (s *testServer) call(t *testing.T, method string, payload any) (int, envelope) {
	t.Helper()
	return post(t, s.router, method, payload)
}

func post(t *testing.T, r http.Handler, method string, payload any) (int, envelope) {
	t.Helper()
	body, err := json.Marshal(map[string]any{"method": method, "payload": payload})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodeResult[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Result, &out))
	return out
}

type projectJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type todoJSON struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"projectId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func TestRPC_ProjectLifecycle(t *testing.T) {
	s := setupServer(t)

	code, env := s.call(t, MethodProjectCreate, map[string]any{"name": "Garden", "description": "spring"})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.OK)
	created := decodeResult[projectJSON](t, env)
	assert.Equal(t, "Garden", created.Name)
	require.NotNil(t, created.Description)

	code, env = s.call(t, MethodProjectGetByID, map[string]any{"id": created.ID})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, decodeResult[projectJSON](t, env))

	code, env = s.call(t, MethodProjectUpdate, map[string]any{"id": created.ID, "data": map[string]any{"name": "Yard"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Yard", decodeResult[projectJSON](t, env).Name)

	code, env = s.call(t, MethodProjectGetAll, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeResult[[]projectJSON](t, env), 1)

	code, env = s.call(t, MethodProjectDelete, map[string]any{"id": created.ID})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"success":true,"id":`+jsonInt(created.ID)+`}`, string(env.Result))
}

func TestRPC_CreateWithTodosAndPaginate(t *testing.T) {
	s := setupServer(t)

	todos := make([]map[string]any, 0, 12)
	for i := 0; i < 12; i++ {
		todos = append(todos, map[string]any{"title": "step " + jsonInt(int64(i))})
	}
	code, env := s.call(t, MethodProjectCreateWithTodos, map[string]any{"name": "Release", "todos": todos})
	require.Equal(t, http.StatusOK, code)

	created := decodeResult[struct {
		Project projectJSON `json:"project"`
		Todos   []todoJSON  `json:"todos"`
	}](t, env)
	require.Len(t, created.Todos, 12)
	assert.Equal(t, "step 0", created.Todos[0].Title)

	type page struct {
		Todos      []todoJSON `json:"todos"`
		NextCursor *int64     `json:"nextCursor"`
	}

	// limit defaults to 10
	code, env = s.call(t, MethodTodoGetByProjectIDPaginated, map[string]any{"projectId": created.Project.ID})
	require.Equal(t, http.StatusOK, code)
	first := decodeResult[page](t, env)
	assert.Len(t, first.Todos, 10)
	require.NotNil(t, first.NextCursor)

	code, env = s.call(t, MethodTodoGetByProjectIDPaginated, map[string]any{
		"projectId": created.Project.ID, "cursor": *first.NextCursor, "limit": 10,
	})
	require.Equal(t, http.StatusOK, code)
	second := decodeResult[page](t, env)
	assert.Len(t, second.Todos, 2)
	assert.Nil(t, second.NextCursor)
	assert.Contains(t, string(env.Result), `"nextCursor":null`)
}

func TestRPC_TodoOperations(t *testing.T) {
	s := setupServer(t)

	_, env := s.call(t, MethodProjectCreate, map[string]any{"name": "Chores"})
	project := decodeResult[projectJSON](t, env)

	code, env := s.call(t, MethodTodoCreate, map[string]any{"projectId": project.ID, "title": "dishes"})
	require.Equal(t, http.StatusOK, code)
	todo := decodeResult[todoJSON](t, env)
	assert.False(t, todo.Completed)

	code, env = s.call(t, MethodTodoToggle, map[string]any{"id": todo.ID})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decodeResult[todoJSON](t, env).Completed)

	code, env = s.call(t, MethodTodoUpdate, map[string]any{"id": todo.ID, "data": map[string]any{"title": "dry dishes", "completed": false}})
	require.Equal(t, http.StatusOK, code)
	updated := decodeResult[todoJSON](t, env)
	assert.Equal(t, "dry dishes", updated.Title)
	assert.False(t, updated.Completed)

	code, env = s.call(t, MethodTodoGetByProjectID, map[string]any{"projectId": project.ID})
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeResult[[]todoJSON](t, env), 1)

	code, env = s.call(t, MethodTodoGetAll, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeResult[[]todoJSON](t, env), 1)

	code, _ = s.call(t, MethodTodoDelete, map[string]any{"id": todo.ID})
	require.Equal(t, http.StatusOK, code)

	code, env = s.call(t, MethodTodoGetByID, map[string]any{"id": todo.ID})
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TodoNotFoundError", env.Error.Tag)
	require.NotNil(t, env.Error.ID)
	assert.Equal(t, todo.ID, *env.Error.ID)
}

func TestRPC_NotFoundCarriesID(t *testing.T) {
	s := setupServer(t)

	for _, method := range []string{MethodProjectGetByID, MethodProjectGetWithTodos, MethodProjectDelete} {
		code, env := s.call(t, method, map[string]any{"id": 404})
		assert.Equal(t, http.StatusNotFound, code, method)
		require.NotNil(t, env.Error, method)
		assert.Equal(t, "ProjectNotFoundError", env.Error.Tag)
		assert.Equal(t, "Project with id 404 not found", env.Error.Message)
		require.NotNil(t, env.Error.ID)
		assert.Equal(t, int64(404), *env.Error.ID)
	}
}

func TestRPC_ValidationErrors(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		method  string
		payload any
		message string
	}{
		{"empty project name", MethodProjectCreate, map[string]any{"name": ""}, "Name is required"},
		{"missing payload", MethodProjectCreate, nil, "Name is required"},
		{"empty todo title in batch", MethodProjectCreateWithTodos, map[string]any{"name": "x", "todos": []any{map[string]any{"title": ""}}}, "Title is required"},
		{"zero id", MethodTodoGetByID, map[string]any{"id": 0}, "ID must be a positive integer"},
		{"non-positive limit", MethodTodoGetByProjectIDPaginated, map[string]any{"projectId": 1, "limit": 0}, "Limit must be a positive integer"},
		{"empty patch name", MethodProjectUpdate, map[string]any{"id": 1, "data": map[string]any{"name": ""}}, "Name must not be empty"},
		{"blank name", MethodProjectCreate, map[string]any{"name": "   "}, "Name is required"},
		{"wrong type", MethodTodoToggle, map[string]any{"id": "seven"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.call(t, tt.method, tt.payload)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.OK)
			require.NotNil(t, env.Error)
			assert.Equal(t, TagValidation, env.Error.Tag)
			if tt.message != "" {
				assert.Equal(t, tt.message, env.Error.Message)
			}
		})
	}

	var n int
	require.NoError(t, s.store.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&n))
	assert.Zero(t, n)
}

func TestRPC_EmptyNameNeverTouchesStore(t *testing.T) {
	store, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer store.Close()

	r := newRouter(store, &bytes.Buffer{})
	code, env := post(t, r, MethodProjectCreate, map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, TagValidation, env.Error.Tag)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRPC_InternalErrorIsNotLeaked(t *testing.T) {
	s := setupServer(t)
	require.NoError(t, s.store.Close())

	code, env := s.call(t, MethodProjectGetAll, nil)

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, TagInternal, env.Error.Tag)
	assert.Equal(t, "An internal error occurred", env.Error.Message)
	assert.NotContains(t, env.Error.Message, "closed")

	assert.Contains(t, s.logs.String(), "rpc call failed")
	assert.Contains(t, s.logs.String(), "database is closed")
}

func TestRPC_UnknownMethodAndMalformedEnvelope(t *testing.T) {
	s := setupServer(t)

	code, env := s.call(t, "ProjectExplode", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, TagUnknownMethod, env.Error.Tag)

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(`{"method":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), TagValidation)
}

func TestHandler_MethodsCoverEveryOperation(t *testing.T) {
	h := New(nil, nil, slog.Default())
	assert.ElementsMatch(t, []string{
		"ProjectCreate", "ProjectCreateWithTodos", "ProjectGetAll", "ProjectGetById",
		"ProjectGetWithTodos", "ProjectUpdate", "ProjectDelete",
		"TodoCreate", "TodoGetAll", "TodoGetByProjectId", "TodoGetById", "TodoUpdate",
		"TodoDelete", "TodoToggle", "TodoGetByProjectIdPaginated",
	}, h.Methods())
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
