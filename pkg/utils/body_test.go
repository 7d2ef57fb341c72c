package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/pkg/apperror"
)

func TestDecodeJSONBody(t *testing.T) {
	t.Run("empty body decodes as empty object", func(t *testing.T) {
		var req dto.CreateTaskRequest
		require.NoError(t, DecodeJSONBody([]byte("  "), &req, nil))
		assert.Empty(t, req.Title)
	})

	t.Run("fields decode", func(t *testing.T) {
		var req dto.UpdateTaskRequest
		err := DecodeJSONBody([]byte(`{"status":"completed","extra":null}`), &req, nil)
		require.NoError(t, err)
		require.NotNil(t, req.Status)
		assert.Equal(t, models.TaskStatusCompleted, *req.Status)
		assert.Nil(t, req.Title)
		assert.Nil(t, req.Description)
	})

	t.Run("wrong type is a validation failure", func(t *testing.T) {
		var req dto.CreateTaskRequest
		err := DecodeJSONBody([]byte(`{"title": 42}`), &req, nil)

		appErr := apperror.From(err)
		require.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Equal(t, []apperror.FieldError{{Field: "title", Message: "Expected string, received number"}}, appErr.Details)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		var req dto.CreateTaskRequest
		err := DecodeJSONBody([]byte(`{"title":`), &req, nil)

		appErr := apperror.From(err)
		assert.Equal(t, apperror.KindBadRequest, appErr.Kind)
		assert.Equal(t, "Invalid request body", appErr.PublicMessage())
	})

	t.Run("non-object body is a validation failure", func(t *testing.T) {
		tests := []struct {
			body     string
			received string
		}{
			{`["a"]`, "array"},
			{`[]`, "array"},
			{`"title"`, "string"},
			{`42`, "number"},
			{`true`, "boolean"},
			{`null`, "null"},
		}
		for _, tt := range tests {
			t.Run(tt.body, func(t *testing.T) {
				var req dto.CreateTaskRequest
				appErr := apperror.From(DecodeJSONBody([]byte(tt.body), &req, nil))
				require.Equal(t, apperror.KindValidation, appErr.Kind)
				assert.Equal(t, []apperror.FieldError{{Field: "body", Message: "Expected object, received " + tt.received}}, appErr.Details)
			})
		}
	})

	t.Run("null fields are validation failures", func(t *testing.T) {
		var req dto.UpdateTaskRequest
		err := DecodeJSONBody([]byte(`{"status":null,"title":null}`), &req, nil)

		appErr := apperror.From(err)
		require.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Equal(t, []apperror.FieldError{
			{Field: "title", Message: "Expected string, received null"},
			{Field: "status", Message: "Expected string, received null"},
		}, appErr.Details)
	})
}
