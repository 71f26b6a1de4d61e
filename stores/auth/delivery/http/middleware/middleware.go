package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Auth requires a bearer session token and sets "sessionId" and "pubkey"
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	cont := c.Get("ctx").(ctx.Ctx)
	claims, err := m.auth.ParseToken(cont, key)
	if err != nil {
		cont.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	}
	c.Set("sessionId", claims.SessionId)
	c.Set("pubkey", claims.Pubkey)
	c.Set("ctx", ctx.WithValue(cont, "sessionId", claims.SessionId))
	return true, nil
}
