package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultSearchLimit = 20

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product catalogue handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// Create handles adding a product
func (h *ProductHandler) Create(c echo.Context) error {
	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", product.ID))

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// Get handles retrieving one product with media
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// GetBySKU handles retrieving one product by exact SKU
func (h *ProductHandler) GetBySKU(c echo.Context) error {
	sku := c.Param("sku")
	if sku == "" {
		return response.BadRequest(c, "INVALID_SKU", "SKU must not be empty")
	}

	product, err := h.productUC.GetProductBySKU(c.Request().Context(), sku)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// List handles retrieving every product
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// Search handles free-text product search
func (h *ProductHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_QUERY", "Query parameter 'q' must not be empty")
	}

	limit := defaultSearchLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Query parameter 'limit' must be a positive integer")
		}
		limit = parsed
	}

	products, err := h.productUC.SearchProducts(c.Request().Context(), query, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// Update handles replacing a product's fields
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// Delete handles removing a product with its media
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMedia handles listing a product's media attachments
func (h *ProductHandler) ListMedia(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	media, err := h.productUC.ListMedia(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMediaResponses(media), "")
}

// AddMedia handles attaching a media row by URL
func (h *ProductHandler) AddMedia(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.MediaInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid media input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	media, err := h.productUC.AddMedia(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d/media/%d", id, media.ID))

	return response.Success(c, http.StatusCreated, toMediaResponse(media), "Media attached successfully")
}

// UploadMedia handles a multipart file upload into local media storage
func (h *ProductHandler) UploadMedia(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read the uploaded file")
	}
	defer src.Close()

	media, err := h.productUC.UploadMedia(c.Request().Context(), id, &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Description: c.FormValue("description"),
		Content:     src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d/media/%d", id, media.ID))

	return response.Success(c, http.StatusCreated, toMediaResponse(media), "Media uploaded successfully")
}

// RemoveMedia handles deleting one media row under a product
func (h *ProductHandler) RemoveMedia(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	mediaID, err := parseID(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.productUC.RemoveMedia(c.Request().Context(), id, mediaID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
