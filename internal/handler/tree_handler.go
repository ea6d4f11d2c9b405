package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecosnap/ecosnap-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type TreeHandler struct {
	svc    service.TreeService
	growth *service.GrowthScheduler
}

func NewTreeHandler(svc service.TreeService, growth *service.GrowthScheduler) *TreeHandler {
	return &TreeHandler{svc: svc, growth: growth}
}

func (h *TreeHandler) List(c echo.Context) error {
	username, _ := c.Get("username").(string)
	trees, bank, canPlant, err := h.svc.Trees(c.Request().Context(), username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"trees":    trees,
		"treeBank": bank,
		"canPlant": canPlant,
	})
}

// Water debits the bank; the stage advance commits after the growth delay,
// which is returned so the client can animate it.
func (h *TreeHandler) Water(c echo.Context) error {
	username, _ := c.Get("username").(string)
	treeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid tree id"))
	}

	u, err := h.svc.Water(c.Request().Context(), username, treeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTreeNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "tree not found"))
		case errors.Is(err, service.ErrTreeFullyGrown):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("fully_grown", "tree is fully grown"))
		case errors.Is(err, service.ErrInsufficientBank):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("insufficient_bank", "not enough points in the bank"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"treeBank":      u.TreeBank,
		"watering":      true,
		"commitAfterMs": h.growth.Delay().Milliseconds(),
	})
}

type plantRequest struct {
	X         float64 `json:"x"`
	Z         float64 `json:"z"`
	PaletteID string  `json:"paletteId" validate:"required"`
}

func (h *TreeHandler) Plant(c echo.Context) error {
	username, _ := c.Get("username").(string)

	var req plantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "paletteId is required"))
	}

	u, err := h.svc.Plant(c.Request().Context(), username, req.X, req.Z, req.PaletteID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPalette):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unknown palette"))
		case errors.Is(err, service.ErrNotAllowedYet):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("not_allowed_yet", "grow all trees fully before planting a new one"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"trees":    u.Trees,
		"treeBank": u.TreeBank,
	})
}

func (h *TreeHandler) Progress(c echo.Context) error {
	username, _ := c.Get("username").(string)
	p, err := h.svc.Progress(c.Request().Context(), username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	resp := map[string]interface{}{
		"points":   p.Points,
		"treeBank": p.TreeBank,
		"stage":    p.Stage,
	}
	if p.HasNext {
		resp["nextThreshold"] = p.NextThreshold
	}
	return c.JSON(http.StatusOK, resp)
}
