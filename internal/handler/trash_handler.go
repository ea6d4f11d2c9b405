package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/ecosnap/ecosnap-backend/internal/ai"
	"github.com/ecosnap/ecosnap-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type TrashHandler struct {
	svc service.TrashService
}

func NewTrashHandler(svc service.TrashService) *TrashHandler {
	return &TrashHandler{svc: svc}
}

// Analyze accepts a multipart photo, fingerprints it, and returns the
// classification plus whether this exact image already earned a reward.
func (h *TrashHandler) Analyze(c echo.Context) error {
	username, _ := c.Get("username").(string)

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("no_file", "no image selected"))
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_file", "could not open image"))
	}
	defer f.Close()

	data, readErr := io.ReadAll(f)
	fingerprint := h.svc.Fingerprint(data, readErr)

	mimeType := fh.Header.Get("Content-Type")
	res, err := h.svc.Analyze(c.Request().Context(), username, data, mimeType, fingerprint)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrNotConfigured):
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("not_configured", err.Error()))
		case errors.Is(err, ai.ErrUnavailable):
			return c.JSON(http.StatusBadGateway, NewErrorResponse("analysis_failed", "analysis failed, please try again"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"analysis":    res.Analysis,
		"fingerprint": res.Fingerprint,
		"duplicate":   res.Duplicate,
	})
}

type confirmRequest struct {
	Fingerprint string `json:"fingerprint" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

// Confirm grants the reward for a recycled submission. A duplicate is a
// 200 with awarded=false, not an error.
func (h *TrashHandler) Confirm(c echo.Context) error {
	username, _ := c.Get("username").(string)

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "fingerprint and category are required"))
	}

	res, err := h.svc.Confirm(c.Request().Context(), username, req.Fingerprint, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCategory):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_category", "category is not recognized"))
		case errors.Is(err, service.ErrNotTrashImage):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("not_trash", "image was not recognized as trash"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"awarded":       res.Awarded,
		"duplicate":     res.Duplicate,
		"amountAwarded": res.AmountAwarded,
		"category":      res.Category,
		"points":        res.Points,
		"treeBank":      res.TreeBank,
		"stage":         res.Stage,
	})
}
