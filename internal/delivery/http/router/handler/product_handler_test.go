package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"souk/internal/delivery/http/validator"
	"souk/internal/domain/entity"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUC: uc, logger: slog.Default()}
}

func TestProductHandler_Search(t *testing.T) {
	var gotQuery string
	var gotLimit int
	h := newProductHandler(&fakeProductUC{
		searchFn: func(_ context.Context, query string, limit int) ([]*entity.Product, error) {
			gotQuery = query
			gotLimit = limit

			return []*entity.Product{{ID: 1, Name: "Laksa Paste", SKU: "LKS-01"}}, nil
		},
	})

	c, rec := newEchoContext(t, http.MethodGet, "/products/search?q=laksa", "")
	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "laksa", gotQuery)
	assert.Equal(t, defaultSearchLimit, gotLimit)
}

func TestProductHandler_Search_MissingQuery(t *testing.T) {
	h := newProductHandler(&fakeProductUC{})

	c, rec := newEchoContext(t, http.MethodGet, "/products/search", "")
	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", decodeResponse(t, rec).Error.Code)
}

func TestProductHandler_Search_InvalidLimit(t *testing.T) {
	h := newProductHandler(&fakeProductUC{})

	for _, raw := range []string{"zero", "0", "-3"} {
		c, rec := newEchoContext(t, http.MethodGet, "/products/search?q=laksa&limit="+raw, "")
		require.NoError(t, h.Search(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_LIMIT", decodeResponse(t, rec).Error.Code)
	}
}

func TestProductHandler_GetBySKU(t *testing.T) {
	h := newProductHandler(&fakeProductUC{
		getBySKUFn: func(_ context.Context, sku string) (*entity.Product, error) {
			assert.Equal(t, "LKS-01", sku)

			return &entity.Product{ID: 7, Name: "Laksa Paste", SKU: sku, Price: decimal.NewFromInt(12)}, nil
		},
	})

	c, rec := newEchoContext(t, http.MethodGet, "/products/sku/LKS-01", "")
	c.SetParamNames("sku")
	c.SetParamValues("LKS-01")
	require.NoError(t, h.GetBySKU(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestProductHandler_UploadMedia(t *testing.T) {
	var got *usecase.UploadInput
	h := newProductHandler(&fakeProductUC{
		uploadMediaFn: func(_ context.Context, productID int64, input *usecase.UploadInput) (*entity.ProductMedia, error) {
			assert.Equal(t, int64(3), productID)
			got = input

			return &entity.ProductMedia{ID: 42, ProductID: productID, URL: "http://localhost/media/x.png"}, nil
		},
	})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("description", "storefront shot"))
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/products/3/media/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.UploadMedia(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/products/3/media/42", rec.Header().Get(echo.HeaderLocation))

	require.NotNil(t, got)
	assert.Equal(t, "photo.png", got.Filename)
	assert.Equal(t, "storefront shot", got.Description)
	content, err := io.ReadAll(got.Content)
	require.NoError(t, err)
	assert.Equal(t, "not really a png", string(content))
}

func TestProductHandler_UploadMedia_MissingFile(t *testing.T) {
	h := newProductHandler(&fakeProductUC{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("description", "no file attached"))
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/products/3/media/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.UploadMedia(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeResponse(t, rec).Error.Code)
}

func TestProductHandler_RemoveMedia(t *testing.T) {
	var gotProduct, gotMedia int64
	h := newProductHandler(&fakeProductUC{
		removeMediaFn: func(_ context.Context, productID, mediaID int64) error {
			gotProduct, gotMedia = productID, mediaID

			return nil
		},
	})

	c, rec := newEchoContext(t, http.MethodDelete, "/products/3/media/9", "")
	c.SetParamNames("id", "mediaId")
	c.SetParamValues("3", "9")
	require.NoError(t, h.RemoveMedia(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), gotProduct)
	assert.Equal(t, int64(9), gotMedia)
}

func TestProductHandler_RemoveMedia_InvalidMediaID(t *testing.T) {
	h := newProductHandler(&fakeProductUC{})

	c, rec := newEchoContext(t, http.MethodDelete, "/products/3/media/none", "")
	c.SetParamNames("id", "mediaId")
	c.SetParamValues("3", "none")
	require.Error(t, h.RemoveMedia(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeResponse(t, rec).Error.Code)
}
