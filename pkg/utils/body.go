package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/samiullah014/stan-task/pkg/apperror"
)

// DecodeJSONBody decodes a request body into dst. An empty body decodes as
// an empty object. Well-formed JSON of the wrong shape (a non-object body, a
// null or mistyped field) is a validation failure; unparsable JSON is a bad
// request.
func DecodeJSONBody(body []byte, dst any, decode func([]byte, any) error) error {
	if decode == nil {
		decode = json.Unmarshal
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	if json.Valid(body) && body[0] != '{' {
		return typeMismatch("body", "object", rawKind(body[0]))
	}

	var fields map[string]json.RawMessage
	if err := decode(body, &fields); err == nil {
		if details := nullFields(fields, dst); len(details) > 0 {
			return apperror.Validation("Validation failed", details)
		}
	}

	err := decode(body, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeMismatch(typeErr.Field, jsonKind(typeErr.Type), typeErr.Value)
	}

	return &apperror.Error{
		Kind:    apperror.KindBadRequest,
		Message: "Invalid request body",
		Err:     err,
	}
}

func typeMismatch(field, expected, received string) error {
	return apperror.Validation("Validation failed", []apperror.FieldError{{
		Field:   field,
		Message: fmt.Sprintf("Expected %s, received %s", expected, received),
	}})
}

// nullFields reports every field of dst that the body sets to null, in
// declaration order. Optional fields may be omitted but never null.
func nullFields(fields map[string]json.RawMessage, dst any) []apperror.FieldError {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var details []apperror.FieldError
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		raw, ok := fields[name]
		if !ok || string(bytes.TrimSpace(raw)) != "null" {
			continue
		}
		details = append(details, apperror.FieldError{
			Field:   name,
			Message: fmt.Sprintf("Expected %s, received null", jsonKind(t.Field(i).Type)),
		})
	}
	return details
}

// rawKind names the JSON type that starts with b.
func rawKind(b byte) string {
	switch b {
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	case '{':
		return "object"
	default:
		return "number"
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
