package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixtures struct {
	service usecase.ProductUsecase
	store   *fakeStore[entity.Product]
	query   *fakeProductQuery
	media   *fakeMediaRepo
	storage *fakeStorage
	cache   *fakeCache
}

func newProductFixtures(withCache bool) *productFixtures {
	fx := &productFixtures{
		store:   &fakeStore[entity.Product]{},
		query:   &fakeProductQuery{},
		media:   &fakeMediaRepo{},
		storage: &fakeStorage{},
	}
	var cache repository.Cache[entity.Product]
	if withCache {
		fx.cache = newFakeCache()
		cache = fx.cache
	}
	fx.service = NewProductService(fx.store, fx.query, fx.media, fx.storage, cache, nil, time.Minute)

	return fx
}

func TestProductService_CreateProduct_DefaultsAvailable(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.saveFn = func(_ context.Context, p *entity.Product) error {
		p.ID = 1

		return nil
	}

	product, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:  "Laksa Paste",
		SKU:   "LAK-001",
		Price: decimal.RequireFromString("5.90"),
	})
	require.NoError(t, err)
	assert.True(t, product.Available)
}

func TestProductService_CreateProduct_WithNestedMedia(t *testing.T) {
	fx := newProductFixtures(false)
	var saved *entity.Product
	fx.store.saveFn = func(_ context.Context, p *entity.Product) error {
		p.ID = 7
		saved = p

		return nil
	}

	_, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:  "Laksa Paste",
		SKU:   "LAK-001",
		Price: decimal.RequireFromString("5.90"),
		Media: []*usecase.MediaInput{
			{URL: "https://mybucket.s3.amazonaws.com/laksa.png", MimeType: "image/png"},
			{Kind: "video", URL: "/clips/laksa.mp4", DurationSeconds: 12},
		},
	})
	require.NoError(t, err)

	require.Len(t, saved.Media, 2)
	assert.Equal(t, entity.MediaImage, saved.Media[0].Kind)
	assert.Equal(t, entity.StorageS3, saved.Media[0].Provider)
	assert.Equal(t, entity.MediaVideo, saved.Media[1].Kind)
	assert.Equal(t, entity.StorageLocal, saved.Media[1].Provider)
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.saveFn = func(_ context.Context, _ *entity.Product) error {
		return repository.ErrConflict
	}

	_, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{Name: "x", SKU: "dup"})
	assert.ErrorIs(t, err, domainerrors.ErrProductConflict)
}

func TestProductService_GetProduct_FillsAndHitsCache(t *testing.T) {
	fx := newProductFixtures(true)
	var storeReads int
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		storeReads++

		return &entity.Product{ID: id, Name: "Laksa Paste"}, nil
	}

	first, err := fx.service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	second, err := fx.service.GetProduct(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, storeReads)
	assert.Equal(t, 1, fx.cache.puts)
	assert.Equal(t, first.Name, second.Name)
}

func TestProductService_GetProduct_NoCacheConfigured(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id}, nil
	}

	product, err := fx.service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestProductService_GetProductBySKU_NotFound(t *testing.T) {
	fx := newProductFixtures(false)
	fx.query.findBySKUFn = func(_ context.Context, _ string) (*entity.Product, error) {
		return nil, repository.ErrNotFound
	}

	_, err := fx.service.GetProductBySKU(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_SearchProducts_NoIndexReturnsEmpty(t *testing.T) {
	fx := newProductFixtures(false)

	hits, err := fx.service.SearchProducts(context.Background(), "laksa", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestProductService_SearchProducts_DelegatesToIndex(t *testing.T) {
	fx := newProductFixtures(false)
	search := &fakeSearch{
		searchFn: func(_ context.Context, query string, limit int) ([]*entity.Product, error) {
			assert.Equal(t, "laksa", query)
			assert.Equal(t, 5, limit)

			return []*entity.Product{{ID: 1}}, nil
		},
	}
	fx.service = NewProductService(fx.store, fx.query, fx.media, fx.storage, nil, search, time.Minute)

	hits, err := fx.service.SearchProducts(context.Background(), "laksa", 5)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestProductService_UpdateProduct_EvictsCache(t *testing.T) {
	fx := newProductFixtures(true)
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id, CreatedAt: time.Unix(1000, 0)}, nil
	}
	fx.store.saveFn = func(_ context.Context, _ *entity.Product) error { return nil }

	updated, err := fx.service.UpdateProduct(context.Background(), 1, &usecase.ProductInput{Name: "New", SKU: "N-1"})
	require.NoError(t, err)

	assert.Equal(t, time.Unix(1000, 0), updated.CreatedAt)
	assert.Equal(t, 1, fx.cache.evicts)
}

func TestProductService_DeleteProduct_EvictsCache(t *testing.T) {
	fx := newProductFixtures(true)
	fx.store.delFn = func(_ context.Context, _ int64) error { return nil }

	require.NoError(t, fx.service.DeleteProduct(context.Background(), 1))
	assert.Equal(t, 1, fx.cache.evicts)
}

func TestProductService_AddMedia_DerivesProvider(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id}, nil
	}
	fx.media.createFn = func(_ context.Context, m *entity.ProductMedia) error {
		m.ID = 9

		return nil
	}

	media, err := fx.service.AddMedia(context.Background(), 1, &usecase.MediaInput{
		Kind: "video",
		URL:  "https://bucket.s3.amazonaws.com/clip.mp4",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MediaVideo, media.Kind)
	assert.Equal(t, entity.StorageS3, media.Provider)
	assert.Equal(t, int64(1), media.ProductID)
}

func TestProductService_AddMedia_MissingProduct(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.findFn = func(_ context.Context, _ int64) (*entity.Product, error) {
		return nil, repository.ErrNotFound
	}

	_, err := fx.service.AddMedia(context.Background(), 404, &usecase.MediaInput{URL: "/x.png"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UploadMedia(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id}, nil
	}
	fx.storage.storeFn = func(_ context.Context, productID int64, filename, mimeType string, r io.Reader) (*service.StoredFile, error) {
		_, _ = io.Copy(io.Discard, r)

		return &service.StoredFile{
			URL:       "/media/product-1/123-photo.jpg",
			Path:      "/tmp/media/product-1/123-photo.jpg",
			SizeBytes: 2048,
			MimeType:  mimeType,
		}, nil
	}
	fx.media.createFn = func(_ context.Context, m *entity.ProductMedia) error {
		m.ID = 5

		return nil
	}

	media, err := fx.service.UploadMedia(context.Background(), 1, &usecase.UploadInput{
		Filename: "photo.jpg",
		MimeType: "image/jpeg",
		Content:  strings.NewReader("bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MediaImage, media.Kind)
	assert.Equal(t, entity.StorageLocal, media.Provider)
	assert.Equal(t, 2, media.SizeKB)
	assert.Equal(t, entity.ValidationPending, media.Status)
}

func TestProductService_UploadMedia_CleansUpOnRecordFailure(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id}, nil
	}
	fx.storage.storeFn = func(_ context.Context, _ int64, _, mimeType string, _ io.Reader) (*service.StoredFile, error) {
		return &service.StoredFile{Path: "/tmp/x", MimeType: mimeType}, nil
	}
	fx.media.createFn = func(_ context.Context, _ *entity.ProductMedia) error {
		return domainerrors.NewDatabaseExecuteError(assert.AnError, "boom")
	}

	_, err := fx.service.UploadMedia(context.Background(), 1, &usecase.UploadInput{
		Filename: "photo.jpg",
		Content:  strings.NewReader("bytes"),
	})
	require.Error(t, err)
	assert.Equal(t, []string{"/tmp/x"}, fx.storage.removed)
}

func TestProductService_RemoveMedia_NotFound(t *testing.T) {
	fx := newProductFixtures(false)
	fx.store.findFn = func(_ context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id}, nil
	}
	fx.media.deleteFn = func(_ context.Context, _, _ int64) error {
		return repository.ErrNotFound
	}

	err := fx.service.RemoveMedia(context.Background(), 1, 404)
	assert.ErrorIs(t, err, domainerrors.ErrMediaNotFound)
}
