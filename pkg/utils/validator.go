package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/samiullah014/stan-task/domain/models"
	"github.com/samiullah014/stan-task/pkg/apperror"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// ใช้ชื่อจาก json tag ใน error details แทนชื่อ field ของ Go
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		if err := v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
			return models.TaskStatus(fl.Field().String()).IsValid()
		}); err != nil {
			panic(err)
		}

		validate = v
	})
	return validate
}

// ValidateStruct runs the struct tags on s and returns a Validation error
// with one detail per failing field.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	details := GetValidationErrors(err)
	if len(details) == 0 {
		return apperror.Internal(err)
	}
	return apperror.Validation("Validation failed", details)
}

// GetValidationErrors แปลง validator errors เป็น field/message pairs
func GetValidationErrors(err error) []apperror.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   fieldPath(fe),
			Message: validationMessage(fe),
		})
	}
	return details
}

// fieldPath drops the root struct name: "CreateTaskRequest.title" -> "title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Param() == "1" {
			return label + " cannot be empty"
		}
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "task_status":
		return label + " must be one of: " + joinStatuses(models.TaskStatuses)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func joinStatuses(statuses []models.TaskStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
