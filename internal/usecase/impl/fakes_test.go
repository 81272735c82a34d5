package impl

import (
	"context"
	"io"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
)

// fakeStore satisfies the generic store port with per-method hooks so each
// test can script exactly the behavior it needs.
type fakeStore[E any] struct {
	saveFn func(ctx context.Context, e *E) error
	findFn func(ctx context.Context, id int64) (*E, error)
	listFn func(ctx context.Context) ([]*E, error)
	delFn  func(ctx context.Context, id int64) error
}

func (f *fakeStore[E]) Save(ctx context.Context, e *E) error {
	return f.saveFn(ctx, e)
}

func (f *fakeStore[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	return f.findFn(ctx, id)
}

func (f *fakeStore[E]) FindAll(ctx context.Context) ([]*E, error) {
	return f.listFn(ctx)
}

func (f *fakeStore[E]) DeleteByID(ctx context.Context, id int64) error {
	return f.delFn(ctx, id)
}

type fakeProductQuery struct {
	findBySKUFn func(ctx context.Context, sku string) (*entity.Product, error)
}

func (f *fakeProductQuery) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return f.findBySKUFn(ctx, sku)
}

type fakeMediaRepo struct {
	createFn func(ctx context.Context, media *entity.ProductMedia) error
	listFn   func(ctx context.Context, productID int64) ([]*entity.ProductMedia, error)
	deleteFn func(ctx context.Context, productID, mediaID int64) error
}

func (f *fakeMediaRepo) CreateMedia(ctx context.Context, media *entity.ProductMedia) error {
	return f.createFn(ctx, media)
}

func (f *fakeMediaRepo) FindMediaByProduct(ctx context.Context, productID int64) ([]*entity.ProductMedia, error) {
	return f.listFn(ctx, productID)
}

func (f *fakeMediaRepo) DeleteMedia(ctx context.Context, productID, mediaID int64) error {
	return f.deleteFn(ctx, productID, mediaID)
}

// fakeCache records hits and writes in plain maps.
type fakeCache struct {
	entries map[int64]*entity.Product
	puts    int
	evicts  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[int64]*entity.Product{}}
}

func (f *fakeCache) Get(_ context.Context, id int64) (*entity.Product, error) {
	if p, ok := f.entries[id]; ok {
		return p, nil
	}

	return nil, repository.ErrNotFound
}

func (f *fakeCache) Put(_ context.Context, id int64, value *entity.Product, _ time.Duration) error {
	f.entries[id] = value
	f.puts++

	return nil
}

func (f *fakeCache) Evict(_ context.Context, id int64) error {
	delete(f.entries, id)
	f.evicts++

	return nil
}

type fakeSearch struct {
	searchFn func(ctx context.Context, query string, limit int) ([]*entity.Product, error)
}

func (f *fakeSearch) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	return f.searchFn(ctx, query, limit)
}

type fakeStorage struct {
	storeFn  func(ctx context.Context, productID int64, filename, mimeType string, r io.Reader) (*service.StoredFile, error)
	removed  []string
	removeFn func(ctx context.Context, path string) error
}

func (f *fakeStorage) Store(ctx context.Context, productID int64, filename, mimeType string, r io.Reader) (*service.StoredFile, error) {
	return f.storeFn(ctx, productID, filename, mimeType, r)
}

func (f *fakeStorage) Remove(ctx context.Context, path string) error {
	f.removed = append(f.removed, path)
	if f.removeFn != nil {
		return f.removeFn(ctx, path)
	}

	return nil
}

type fakeFetcher struct {
	fetchFn func(ctx context.Context, url string) (*service.PreviewResult, error)
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*service.PreviewResult, error) {
	return f.fetchFn(ctx, url)
}
