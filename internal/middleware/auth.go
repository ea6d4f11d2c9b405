package middleware

import (
	"net/http"

	"github.com/ecosnap/ecosnap-backend/internal/token"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	jwt *token.JWT
}

func NewAuthMiddleware(jwt *token.JWT) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenStr, err := m.jwt.FromRequest(c.Request())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		username, err := m.jwt.Username(tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
		}
		c.Set("username", username)
		return next(c)
	}
}
