// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"context"
	"errors"
	"strings"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocalUserID = "user_id"
	LocalUser   = "user"
)

// UserResolver loads the account named by a token subject; nil, nil means
// the account no longer exists.
type UserResolver interface {
	FindUser(ctx context.Context, userId uuid.UUID) (*entity.User, error)
}

// AuthGuard admits requests carrying a valid bearer token for an existing user.
func AuthGuard(verifier token.Verifier, users UserResolver, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return apperror.Unauthenticated(constant.MsgAuthNoToken, nil)
		}
		tokenStr := strings.TrimSpace(authHeader[7:])
		if tokenStr == "" {
			return apperror.Unauthenticated(constant.MsgAuthNoToken, nil)
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				return apperror.Unauthenticated(constant.MsgAuthTokenExpired, err)
			}
			return apperror.Unauthenticated(constant.MsgAuthTokenFailed, err)
		}

		userId, err := uuid.Parse(claims.Subject)
		if err != nil {
			return apperror.Unauthenticated(constant.MsgAuthTokenFailed, err)
		}

		user, err := users.FindUser(ctx.UserContext(), userId)
		if err != nil {
			log.Error("AUTH", "Failed to resolve token subject", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err,
			})
			return apperror.Unauthenticated(constant.MsgAuthTokenFailed, err)
		}
		if user == nil {
			return apperror.Unauthenticated(constant.MsgAuthUserNotFound, nil)
		}

		ctx.Locals(LocalUserID, user.Id.String())
		ctx.Locals(LocalUser, user)
		return ctx.Next()
	}
}

// CurrentUser returns the account admitted by AuthGuard.
func CurrentUser(ctx *fiber.Ctx) (*entity.User, error) {
	user, ok := ctx.Locals(LocalUser).(*entity.User)
	if !ok || user == nil {
		return nil, apperror.Unauthenticated(constant.MsgAuthNoToken, nil)
	}
	return user, nil
}
