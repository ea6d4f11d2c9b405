package handler

import (
	"net/http"

	"github.com/ecosnap/ecosnap-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	svc service.UserService
}

func NewStatsHandler(svc service.UserService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Get returns the per-category submission tallies and their total.
func (h *StatsHandler) Get(c echo.Context) error {
	username, _ := c.Get("username").(string)
	u, err := h.svc.Me(c.Request().Context(), username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}

	byCat := make(map[string]int)
	total := 0
	for cat, n := range u.RecycledByCategory() {
		byCat[string(cat)] = n
		total += n
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":      total,
		"byCategory": byCat,
	})
}
