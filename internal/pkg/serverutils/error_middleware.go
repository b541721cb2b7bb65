package serverutils

import (
	"errors"

	"mist-provisioning-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ClassifiedError is the boundary view of a domain error.
type ClassifiedError struct {
	Status    int
	ErrorCode string
	Details   map[string]interface{}
}

// ErrorClassifier maps a domain error to its boundary representation. ok is
// false for errors it does not recognise.
type ErrorClassifier func(err error) (ClassifiedError, bool)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// envelope. Unknown errors become 500.
func ErrorHandlerMiddleware(classify ErrorClassifier, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			details := make(map[string]interface{}, len(validationErr.Fields))
			for k, v := range validationErr.Fields {
				details[k] = v
			}
			return ctx.Status(fiber.StatusUnprocessableEntity).
				JSON(CodedErrorResponse(fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error(), details))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		if classify != nil {
			if c, ok := classify(err); ok {
				if c.Status >= fiber.StatusInternalServerError {
					log.Warn("HTTP", "Request failed", map[string]interface{}{
						"method": ctx.Method(),
						"path":   ctx.Path(),
						"code":   c.ErrorCode,
						"error":  err.Error(),
					})
				}
				return ctx.Status(c.Status).JSON(CodedErrorResponse(c.Status, c.ErrorCode, err.Error(), c.Details))
			}
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(CodedErrorResponse(fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil))
	}
}
