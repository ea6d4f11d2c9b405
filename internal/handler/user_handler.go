package handler

import (
	"errors"
	"net/http"

	"github.com/ecosnap/ecosnap-backend/internal/service"
	"github.com/ecosnap/ecosnap-backend/internal/token"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
	jwt *token.JWT
}

func NewUserHandler(svc service.UserService, jwt *token.JWT) *UserHandler {
	return &UserHandler{svc: svc, jwt: jwt}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates or auto-creates the account, then issues the bearer
// token carrying the session's username.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "please enter both username and password"))
	}

	u, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "please enter both username and password"))
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid_credentials", "incorrect password"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
		}
	}

	tok, err := h.jwt.Generate(u.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":  newUserResponse(u),
		"token": tok,
	})
}

func (h *UserHandler) Logout(c echo.Context) error {
	username, _ := c.Get("username").(string)
	if err := h.svc.Logout(c.Request().Context(), username); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	u, err := h.svc.Me(c.Request().Context(), username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, newUserResponse(u))
}

// Session restores the persisted current-session record after a restart.
func (h *UserHandler) Session(c echo.Context) error {
	u, err := h.svc.CurrentSession(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("no_session", "no current session"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, newUserResponse(u))
}
