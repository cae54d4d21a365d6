package serverutils

import (
	"errors"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/upstream"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns handler errors into the error envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

// ErrorHandler is the fiber.Config hook for errors raised outside the middleware chain.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		body := ErrorResponse(appErr.Code, appErr.Message)
		body.Data = appErr.Data
		return ctx.Status(appErr.Code).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	if status := upstream.HTTPStatus(err); status != 0 {
		log.Error("HTTP", "Upstream provider error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err,
		})
		return ctx.Status(status).JSON(ErrorResponse(status, upstream.Phrase(err)))
	}

	log.Error("HTTP", "Unhandled error", map[string]interface{}{
		"path":   ctx.Path(),
		"method": ctx.Method(),
		"error":  err,
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}

// UserID reads the id JwtMiddleware stored on the request.
func UserID(ctx *fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals("user_id").(string)
	return id, ok && id != ""
}
