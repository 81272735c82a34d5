package main

import (
	"context"
	"log/slog"
	"os"

	"souk/config"
	"souk/internal/delivery"
	"souk/internal/delivery/http"
	"souk/internal/delivery/http/router/handler"
	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/infra/cache"
	logs "souk/internal/infra/log"
	"souk/internal/infra/persistence/postgres"
	"souk/internal/infra/preview"
	"souk/internal/infra/search"
	"souk/internal/infra/storage"
	"souk/internal/usecase"
	"souk/internal/usecase/impl"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// productCacheKeyPrefix namespaces product entries in Redis.
const productCacheKeyPrefix = "product"

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewClient,
		search.NewClient,
		storage.NewLocalStorage,
		preview.NewFetcher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCuisineStore,
			postgres.NewCustomerStore,
			postgres.NewCustomerAddressStore,
			postgres.NewOrderStore,
			postgres.NewProductStore,
			postgres.NewProductQuery,
			postgres.NewProductMediaRepository,
			postgres.NewVendorStore,
			newProductCache,
			newProductSearch,
		),
	)
}

// newProductCache wires the Redis-backed product cache. A nil client (cache
// disabled in config) yields a nil port, which the product service treats as
// a permanent miss.
func newProductCache(client *redis.Client) repository.Cache[entity.Product] {
	return cache.New[entity.Product](client, productCacheKeyPrefix)
}

// newProductSearch wires the Elasticsearch-backed product search. A nil
// client (search disabled in config) yields a nil port, which makes every
// search return no results.
func newProductSearch(client *elasticsearch.Client, cfg *config.Config) repository.Search[entity.Product] {
	return search.New[entity.Product](client, cfg.Search.Index)
}

// newProductService binds the cache TTL from config into the product service.
func newProductService(
	products repository.Store[entity.Product],
	query repository.ProductQuery,
	media repository.ProductMediaRepository,
	mediaStorage service.MediaStorage,
	productCache repository.Cache[entity.Product],
	productSearch repository.Search[entity.Product],
	cfg *config.Config,
) usecase.ProductUsecase {
	return impl.NewProductService(products, query, media, mediaStorage, productCache, productSearch, cfg.Cache.TTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCuisineService,
			impl.NewCustomerService,
			impl.NewOrderService,
			newProductService,
			impl.NewVendorService,
			impl.NewPreviewService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCuisineHandler,
			handler.NewCustomerHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewVendorHandler,
			handler.NewPreviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
