package serverutils

import (
	"errors"
	"fmt"

	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware renders any error returned down the chain as the
// standard envelope. Stacks are attached to 500s only when exposeStack is set.
func ErrorHandlerMiddleware(log logger.ILogger, exposeStack bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message := classify(err)
		res := ErrorResponse(status, message)

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": status,
				"error":  err.Error(),
			})
			if exposeStack && status == fiber.StatusInternalServerError {
				res.Stack = stackOf(err)
			}
		}

		return ctx.Status(status).JSON(res)
	}
}

func classify(err error) (int, string) {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Status(), appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, err.Error()
}

// stackOf prints the cause with its pkg/errors stack when one was captured.
func stackOf(err error) string {
	if appErr, ok := apperror.As(err); ok && appErr.Cause != nil {
		return fmt.Sprintf("%+v", appErr.Cause)
	}
	return fmt.Sprintf("%+v", err)
}
