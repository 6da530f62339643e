package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"project not found", ProjectNotFound(7), KindNotFound},
		{"wrapped todo not found", fmt.Errorf("get todo: %w", TodoNotFound(3)), KindNotFound},
		{"validation", Invalid("name", "Name is required"), KindValidation},
		{"raw store error", sql.ErrConnDone, KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("repo: %w", ProjectNotFound(42))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "repo: Project with id 42 not found", err.Error())

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(42), nf.ID)
	assert.Equal(t, "ProjectNotFoundError", nf.Tag())
	assert.Equal(t, "TodoNotFoundError", TodoNotFound(1).(*NotFoundError).Tag())
}

func TestValidationError(t *testing.T) {
	err := Invalid("title", "Title is required")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Title is required", err.Error())
	assert.Equal(t, "validation", KindOf(err).String())
}
