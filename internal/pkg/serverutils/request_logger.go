package serverutils

import (
	"time"

	"genai-studio-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// RequestLogger writes one line per request. Bodies are never logged.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		details := map[string]interface{}{
			"method":     utils.CopyString(ctx.Method()),
			"path":       utils.CopyString(ctx.Path()),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": utils.CopyString(ctx.GetRespHeader(fiber.HeaderXRequestID)),
		}
		if uid, ok := ctx.Locals(LocalUserID).(string); ok {
			details["user_id"] = uid
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("HTTP", "request failed", details)
		case status >= fiber.StatusBadRequest:
			log.Warn("HTTP", "request rejected", details)
		default:
			log.Debug("HTTP", "request served", details)
		}
		return err
	}
}
