package handler

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/service"
	"souk/internal/usecase"
)

type fakeCuisineUC struct {
	createFn func(ctx context.Context, input *usecase.CuisineInput) (*entity.Cuisine, error)
	getFn    func(ctx context.Context, id int64) (*entity.Cuisine, error)
	listFn   func(ctx context.Context) ([]*entity.Cuisine, error)
	updateFn func(ctx context.Context, id int64, input *usecase.CuisineInput) (*entity.Cuisine, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeCuisineUC) CreateCuisine(ctx context.Context, input *usecase.CuisineInput) (*entity.Cuisine, error) {
	return f.createFn(ctx, input)
}

func (f *fakeCuisineUC) GetCuisine(ctx context.Context, id int64) (*entity.Cuisine, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCuisineUC) ListCuisines(ctx context.Context) ([]*entity.Cuisine, error) {
	return f.listFn(ctx)
}

func (f *fakeCuisineUC) UpdateCuisine(ctx context.Context, id int64, input *usecase.CuisineInput) (*entity.Cuisine, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeCuisineUC) DeleteCuisine(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeProductUC struct {
	createFn      func(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error)
	getFn         func(ctx context.Context, id int64) (*entity.Product, error)
	getBySKUFn    func(ctx context.Context, sku string) (*entity.Product, error)
	listFn        func(ctx context.Context) ([]*entity.Product, error)
	searchFn      func(ctx context.Context, query string, limit int) ([]*entity.Product, error)
	updateFn      func(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error)
	deleteFn      func(ctx context.Context, id int64) error
	listMediaFn   func(ctx context.Context, productID int64) ([]*entity.ProductMedia, error)
	addMediaFn    func(ctx context.Context, productID int64, input *usecase.MediaInput) (*entity.ProductMedia, error)
	uploadMediaFn func(ctx context.Context, productID int64, input *usecase.UploadInput) (*entity.ProductMedia, error)
	removeMediaFn func(ctx context.Context, productID, mediaID int64) error
}

func (f *fakeProductUC) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	return f.createFn(ctx, input)
}

func (f *fakeProductUC) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return f.getFn(ctx, id)
}

func (f *fakeProductUC) GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return f.getBySKUFn(ctx, sku)
}

func (f *fakeProductUC) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return f.listFn(ctx)
}

func (f *fakeProductUC) SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	return f.searchFn(ctx, query, limit)
}

func (f *fakeProductUC) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeProductUC) DeleteProduct(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeProductUC) ListMedia(ctx context.Context, productID int64) ([]*entity.ProductMedia, error) {
	return f.listMediaFn(ctx, productID)
}

func (f *fakeProductUC) AddMedia(ctx context.Context, productID int64, input *usecase.MediaInput) (*entity.ProductMedia, error) {
	return f.addMediaFn(ctx, productID, input)
}

func (f *fakeProductUC) UploadMedia(ctx context.Context, productID int64, input *usecase.UploadInput) (*entity.ProductMedia, error) {
	return f.uploadMediaFn(ctx, productID, input)
}

func (f *fakeProductUC) RemoveMedia(ctx context.Context, productID, mediaID int64) error {
	return f.removeMediaFn(ctx, productID, mediaID)
}

type fakeVendorUC struct {
	createFn func(ctx context.Context, input *usecase.VendorInput) (*entity.Vendor, error)
	getFn    func(ctx context.Context, id int64) (*entity.Vendor, error)
	listFn   func(ctx context.Context, filter string) ([]*entity.Vendor, error)
	updateFn func(ctx context.Context, id int64, input *usecase.VendorInput) (*entity.Vendor, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeVendorUC) CreateVendor(ctx context.Context, input *usecase.VendorInput) (*entity.Vendor, error) {
	return f.createFn(ctx, input)
}

func (f *fakeVendorUC) GetVendor(ctx context.Context, id int64) (*entity.Vendor, error) {
	return f.getFn(ctx, id)
}

func (f *fakeVendorUC) ListVendors(ctx context.Context, filter string) ([]*entity.Vendor, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeVendorUC) UpdateVendor(ctx context.Context, id int64, input *usecase.VendorInput) (*entity.Vendor, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeVendorUC) DeleteVendor(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakePreviewUC struct {
	fetchFn func(ctx context.Context, url string) (*service.PreviewResult, error)
}

func (f *fakePreviewUC) FetchPreview(ctx context.Context, url string) (*service.PreviewResult, error) {
	return f.fetchFn(ctx, url)
}
