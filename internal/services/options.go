// Package services wires the application's dependencies together.
package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/storefront-service/internal/api"
	"github.com/light-bringer/storefront-service/internal/api/handlers"
	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/low_stock"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/sales_summary"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/suggest_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_genres"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/save_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_order_status"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/storefront-service/internal/counter"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/stream"
)

// Options configures the optional infrastructure. Empty values disable
// the corresponding component.
type Options struct {
	SpannerDB    string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	KafkaBrokers []string
}

// ServiceOptions holds all wired application dependencies.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handlers      *api.Handlers

	redisClient *redis.Client
	publisher   *stream.Publisher
}

// NewServiceOptions creates and wires up all application dependencies.
// Spanner is required; Redis and Kafka are optional and degrade to
// missing metrics routes and no event publishing.
func NewServiceOptions(ctx context.Context, opts *Options) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, opts.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// Repositories and read models
	productRepo := repo.NewProductRepo(spannerClient)
	taxonomyRepo := repo.NewTaxonomyRepo(spannerClient)
	orderRepo := repo.NewOrderRepo(spannerClient)
	catalogReadModel := repo.NewCatalogReadModel(spannerClient)
	orderReadModel := repo.NewOrderReadModel(spannerClient)

	// Event publishing (optional)
	var publisher *stream.Publisher
	var eventPublisher contracts.OrderEventPublisher
	if len(opts.KafkaBrokers) > 0 {
		if err := stream.CreateTopics(opts.KafkaBrokers[0]); err != nil {
			log.Printf("Kafka topic bootstrap failed (continuing): %v", err)
		}
		publisher = stream.NewPublisher(opts.KafkaBrokers)
		eventPublisher = publisher
	} else {
		log.Println("Kafka brokers not configured, order events disabled")
	}

	// Usecases
	createProduct := create_product.NewInteractor(productRepo, comm, clk)
	updateProduct := update_product.NewInteractor(productRepo, comm)
	deleteProduct := delete_product.NewInteractor(productRepo, comm)
	saveTaxonomy := save_taxonomy.NewInteractor(taxonomyRepo, comm)
	deleteTaxonomy := delete_taxonomy.NewInteractor(taxonomyRepo, comm)
	placeOrder := place_order.NewInteractor(productRepo, orderRepo, comm, clk)
	updateOrderStatus := update_order_status.NewInteractor(orderRepo, comm, eventPublisher, clk)

	// Queries
	listProducts := list_products.NewQuery(catalogReadModel, taxonomyRepo)
	getProduct := get_product.NewQuery(catalogReadModel)
	searchProducts := search_products.NewQuery(catalogReadModel)
	suggestProducts := suggest_products.NewQuery(catalogReadModel)
	topGenres := top_genres.NewQuery(orderReadModel)
	topCategories := top_categories.NewQuery(orderReadModel, catalogReadModel)
	topProducts := top_products.NewQuery(orderReadModel, catalogReadModel)
	lowStock := low_stock.NewQuery(catalogReadModel)
	salesSummary := sales_summary.NewQuery(orderReadModel, catalogReadModel)
	listTaxonomy := list_taxonomy.NewQuery(taxonomyRepo)

	// Visit counters (optional)
	var redisClient *redis.Client
	var metricsHandler *handlers.MetricsHandler
	if opts.RedisAddr != "" {
		redisClient, err = counter.Connect(&counter.Config{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPass,
			DB:       opts.RedisDB,
		})
		if err != nil {
			log.Printf("Redis unavailable, visit counters disabled: %v", err)
		} else {
			metricsHandler = handlers.NewMetricsHandler(counter.NewCounter(redisClient))
		}
	}

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handlers: &api.Handlers{
			Products: handlers.NewProductHandler(listProducts, getProduct, createProduct, updateProduct, deleteProduct),
			Search:   handlers.NewSearchHandler(searchProducts, suggestProducts),
			Stats:    handlers.NewStatsHandler(topGenres, topCategories, topProducts, lowStock, salesSummary),
			Taxonomy: handlers.NewTaxonomyHandler(listTaxonomy, saveTaxonomy, deleteTaxonomy),
			Orders:   handlers.NewOrderHandler(orderReadModel, placeOrder, updateOrderStatus),
			Metrics:  metricsHandler,
		},
		redisClient: redisClient,
		publisher:   publisher,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			log.Printf("failed to close Kafka writer: %v", err)
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Printf("failed to close Redis client: %v", err)
		}
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
