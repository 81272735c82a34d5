package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"souk/internal/domain/entity"
	"souk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorHandler(uc usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUC: uc, logger: slog.Default()}
}

func TestVendorHandler_List_PassesFilter(t *testing.T) {
	var gotFilter string
	h := newVendorHandler(&fakeVendorUC{
		listFn: func(_ context.Context, filter string) ([]*entity.Vendor, error) {
			gotFilter = filter

			return []*entity.Vendor{{ID: 1, Name: "Spice Route"}}, nil
		},
	})

	c, rec := newEchoContext(t, http.MethodGet, "/vendors?q=spice", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "spice", gotFilter)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestVendorHandler_List_NoFilter(t *testing.T) {
	h := newVendorHandler(&fakeVendorUC{
		listFn: func(_ context.Context, filter string) ([]*entity.Vendor, error) {
			assert.Empty(t, filter)

			return nil, nil
		},
	})

	c, rec := newEchoContext(t, http.MethodGet, "/vendors", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
