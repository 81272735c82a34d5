package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CuisineHandlerParams holds dependencies for CuisineHandler, injected by Fx.
type CuisineHandlerParams struct {
	fx.In

	CuisineUC usecase.CuisineUsecase
	Logger    *slog.Logger
}

// CuisineHandler holds dependencies for cuisine catalogue handlers
type CuisineHandler struct {
	cuisineUC usecase.CuisineUsecase
	logger    *slog.Logger
}

// NewCuisineHandler is the constructor for CuisineHandler
func NewCuisineHandler(params CuisineHandlerParams) *CuisineHandler {
	return &CuisineHandler{
		cuisineUC: params.CuisineUC,
		logger:    params.Logger,
	}
}

// Create handles adding a cuisine catalogue entry
func (h *CuisineHandler) Create(c echo.Context) error {
	var req usecase.CuisineInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cuisine input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cuisine, err := h.cuisineUC.CreateCuisine(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/cuisines/%d", cuisine.ID))

	return response.Success(c, http.StatusCreated, toCuisineResponse(cuisine), "Cuisine created successfully")
}

// Get handles retrieving one cuisine entry
func (h *CuisineHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	cuisine, err := h.cuisineUC.GetCuisine(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCuisineResponse(cuisine), "")
}

// List handles retrieving the whole catalogue
func (h *CuisineHandler) List(c echo.Context) error {
	cuisines, err := h.cuisineUC.ListCuisines(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCuisineResponses(cuisines), "")
}

// Update handles replacing a cuisine entry
func (h *CuisineHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.CuisineInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cuisine input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cuisine, err := h.cuisineUC.UpdateCuisine(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCuisineResponse(cuisine), "Cuisine updated successfully")
}

// Delete handles removing a cuisine entry
func (h *CuisineHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cuisineUC.DeleteCuisine(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
