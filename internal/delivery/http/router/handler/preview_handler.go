package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreviewHandlerParams holds dependencies for PreviewHandler, injected by Fx.
type PreviewHandlerParams struct {
	fx.In

	PreviewUC usecase.PreviewUsecase
	Logger    *slog.Logger
}

// PreviewHandler holds dependencies for the preview fetch handler
type PreviewHandler struct {
	previewUC usecase.PreviewUsecase
	logger    *slog.Logger
}

// NewPreviewHandler is the constructor for PreviewHandler
func NewPreviewHandler(params PreviewHandlerParams) *PreviewHandler {
	return &PreviewHandler{
		previewUC: params.PreviewUC,
		logger:    params.Logger,
	}
}

// FetchPreviewRequest represents the request body for a preview fetch
type FetchPreviewRequest struct {
	URL string `json:"url" validate:"required,max=1000"`
}

// Fetch handles downloading a remote image into the local preview cache
func (h *PreviewHandler) Fetch(c echo.Context) error {
	var req FetchPreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.previewUC.FetchPreview(c.Request().Context(), req.URL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPreviewResponse(result), "Preview fetched successfully")
}
