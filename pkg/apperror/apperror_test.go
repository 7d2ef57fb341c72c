package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatusCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindValidation, http.StatusBadRequest},
		{KindBadRequest, http.StatusBadRequest},
		{KindInternal, http.StatusInternalServerError},
		{Kind(42), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.StatusCode())
		})
	}
}

func TestConstructorsDefaultMessages(t *testing.T) {
	assert.Equal(t, "Resource not found", NotFound("").Message)
	assert.Equal(t, "Validation failed", Validation("", nil).Message)
	assert.Equal(t, "Bad request", BadRequest("").Message)
	assert.Equal(t, "Task not found", NotFound("Task not found").Message)
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	err := Internal(cause)

	assert.Equal(t, InternalMessage, err.PublicMessage())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFrom(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})

	t.Run("finds wrapped taxonomy error", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", NotFound("Task not found"))
		got := From(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, KindNotFound, got.Kind)
		assert.Equal(t, "Task not found", got.PublicMessage())
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := From(errors.New("boom"))
		require.NotNil(t, got)
		assert.Equal(t, KindInternal, got.Kind)
		assert.Equal(t, http.StatusInternalServerError, got.StatusCode())
	})
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", BadRequest("Invalid task ID"))
	assert.True(t, IsKind(err, KindBadRequest))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
}
