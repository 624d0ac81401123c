package serverutils

import (
	"errors"

	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const genericErrorMessage = "Internal server error"

// ErrorHandlerMiddleware renders errors returned further down the chain as
// {message} with the status of their kind.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return writeError(ctx, log, err)
	}
}

func writeError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
	}

	details := map[string]interface{}{
		"method": utils.CopyString(ctx.Method()),
		"path":   utils.CopyString(ctx.Path()),
		"error":  err,
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Error("HTTP", "Unhandled error", details)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(genericErrorMessage))
	}

	status := apperror.StatusOf(appErr.Kind)
	details["kind"] = string(appErr.Kind)
	if status >= fiber.StatusInternalServerError {
		log.Error("HTTP", appErr.Message, details)
	} else {
		log.Warn("HTTP", appErr.Message, details)
	}
	return ctx.Status(status).JSON(ErrorResponse(appErr.Message))
}
