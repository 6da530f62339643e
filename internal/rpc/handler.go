// Package rpc exposes the project and todo operations as a single POST
// endpoint taking {"method", "payload"} envelopes.
package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/service"
)

// Request is the envelope posted to /rpc.
type Request struct {
	Method  string          `json:"method" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

type procedure func(ctx context.Context, payload json.RawMessage) (any, error)

// Handler bundles the dependencies for the rpc endpoint.
type Handler struct {
	projects   *service.ProjectService
	todos      *service.TodoService
	logger     *slog.Logger
	procedures map[string]procedure
}

func New(projects *service.ProjectService, todos *service.TodoService, logger *slog.Logger) *Handler {
	h := &Handler{
		projects: projects,
		todos:    todos,
		logger:   logger,
	}
	h.procedures = h.routes()
	return h
}

// Register attaches POST /rpc. Extra middleware runs before the handler.
func (h *Handler) Register(r gin.IRouter, mw ...gin.HandlerFunc) {
	handlers := append(mw, h.Handle)
	r.POST("/rpc", handlers...)
}

// Methods lists the operation names the handler accepts.
func (h *Handler) Methods() []string {
	out := make([]string, 0, len(h.procedures))
	for m := range h.procedures {
		out = append(out, m)
	}
	return out
}

func (h *Handler) Handle(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "", payloadError(err))
		return
	}

	proc, ok := h.procedures[req.Method]
	if !ok {
		respondError(c, http.StatusBadRequest, ErrorBody{
			Tag:     TagUnknownMethod,
			Message: "Unknown method: " + req.Method,
		})
		return
	}

	result, err := proc(c.Request.Context(), req.Payload)
	if err != nil {
		h.fail(c, req.Method, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

// decode unmarshals and validates a payload. A missing payload decodes as
// an empty object so required fields report properly.
func decode[T any](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}
	if err := binding.JSON.BindBody(raw, &p); err != nil {
		return p, payloadError(err)
	}
	return p, nil
}
