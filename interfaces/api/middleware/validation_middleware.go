package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/pkg/apperror"
	"github.com/samiullah014/stan-task/pkg/utils"
)

const validatedBodyLocal = "validated_body"

// Normalizer is a request DTO that cleans itself up before validation.
type Normalizer[T any] interface {
	*T
	Normalize()
}

// ValidateBody decodes the JSON body into T, normalizes and validates it,
// and stores the result for the handler. Failures go to the error handler
// and the route handler is never reached.
func ValidateBody[T any, PT Normalizer[T]]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := PT(new(T))

		if err := utils.DecodeJSONBody(c.Body(), req, c.App().Config().JSONDecoder); err != nil {
			return err
		}
		req.Normalize()
		if err := utils.ValidateStruct(req); err != nil {
			return err
		}

		c.Locals(validatedBodyLocal, (*T)(req))
		return c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateBody[T].
func ValidatedBody[T any](c *fiber.Ctx) (*T, error) {
	req, ok := c.Locals(validatedBodyLocal).(*T)
	if !ok || req == nil {
		return nil, apperror.BadRequest("Invalid request body")
	}
	return req, nil
}

// RejectEmptyUpdate turns a PUT without any known field into a validation
// failure. Mount it after ValidateBody[dto.UpdateTaskRequest].
func RejectEmptyUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := ValidatedBody[dto.UpdateTaskRequest](c)
		if err != nil {
			return err
		}
		if req.IsEmpty() {
			return apperror.Validation("Validation failed", []apperror.FieldError{{
				Field:   "body",
				Message: "At least one field must be provided",
			}})
		}
		return c.Next()
	}
}
