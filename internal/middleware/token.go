package middleware

import (
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	jwtPkg "BlogNest/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	user, err := m.resolveUser(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

// NewOptionalTokenMiddleware resolves the caller when a valid token is
// present and continues anonymous otherwise. Routes whose auth requirement
// is a policy flag sit behind this one.
func (m *middleware) NewOptionalTokenMiddleware(ctx *fiber.Ctx) error {
	if ctx.Get("Authorization") == "" {
		return ctx.Next()
	}

	user, err := m.resolveUser(ctx)
	if err != nil {
		return ctx.Next()
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

func (m *middleware) resolveUser(ctx *fiber.Ctx) (entity.UserLoginData, error) {
	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return entity.UserLoginData{}, err
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.Warn("Invalid token claims")
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	if claims["id"] == nil || claims["username"] == nil || claims["session_id"] == nil {
		m.log.Warn("Token claims are missing required fields")
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	user := entity.UserLoginData{
		ID:        claims["id"].(string),
		Username:  claims["username"].(string),
		SessionID: claims["session_id"].(string),
	}

	// A token is only as alive as its session record; logout deletes the
	// record, so revoked tokens fail here even before their exp.
	userID, err := m.sessionStore.GetSession(contextPkg.FromFiberCtx(ctx), user.SessionID)
	if err != nil || userID != user.ID {
		m.log.WithFields(logrus.Fields{
			"path":       ctx.Path(),
			"session_id": user.SessionID,
		}).Warn("Session not found or revoked")
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
