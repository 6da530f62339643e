package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/todo-tracker/config"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/bootstrap"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/db"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/logging"
	"github.com/GoSim-25-26J-441/todo-tracker/pkg/client"
)

func startServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.Discard()
	store, err := bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: db.MemoryPath},
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := httptest.NewServer(bootstrap.BuildRouter(bootstrap.RouterDeps{DB: store, Logger: logger}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTodoctl_ProjectAndTodoFlow(t *testing.T) {
	server := startServer(t)

	out, err := run(t, server, "project", "create-with-todos", "Weekend", "--todo", "laundry", "--todo", "groceries")
	require.NoError(t, err)

	var created client.ProjectWithTodos
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.Len(t, created.Todos, 2)
	projectID := strconv.FormatInt(created.Project.ID, 10)
	todoID := strconv.FormatInt(created.Todos[0].ID, 10)

	out, err = run(t, server, "todo", "toggle", todoID)
	require.NoError(t, err)
	var toggled client.Todo
	require.NoError(t, json.Unmarshal([]byte(out), &toggled))
	assert.True(t, toggled.Completed)

	out, err = run(t, server, "--output", "yaml", "todo", "page", "--project", projectID, "--limit", "1")
	require.NoError(t, err)
	var page struct {
		Todos      []map[string]any `yaml:"todos"`
		NextCursor *int64           `yaml:"nextCursor"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &page))
	assert.Len(t, page.Todos, 1)
	require.NotNil(t, page.NextCursor)

	out, err = run(t, server, "todo", "page", "--project", projectID, "--limit", "1", "--all")
	require.NoError(t, err)
	var all []client.Todo
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, 2)

	out, err = run(t, server, "project", "update", projectID, "--description", "chores")
	require.NoError(t, err)
	assert.Contains(t, out, `"description": "chores"`)

	_, err = run(t, server, "project", "delete", projectID)
	require.NoError(t, err)

	_, err = run(t, server, "project", "get", projectID)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestTodoctl_RejectsBadInput(t *testing.T) {
	server := startServer(t)

	_, err := run(t, server, "--output", "xml", "project", "list")
	assert.ErrorContains(t, err, "unsupported output")

	_, err = run(t, server, "todo", "get", "abc")
	assert.ErrorContains(t, err, "invalid id")

	_, err = run(t, server, "project", "create", "")
	require.Error(t, err)
	assert.True(t, client.IsValidation(err))
}

func TestTodoctl_Health(t *testing.T) {
	server := startServer(t)

	out, err := run(t, server, "health")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
}
