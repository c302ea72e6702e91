package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

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
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateProduct     *create_product.Interactor
	UpdateProduct     *update_product.Interactor
	DeleteProduct     *delete_product.Interactor
	SaveTaxonomy      *save_taxonomy.Interactor
	DeleteTaxonomy    *delete_taxonomy.Interactor
	PlaceOrder        *place_order.Interactor
	UpdateOrderStatus *update_order_status.Interactor

	// Queries
	ListProducts    *list_products.Query
	SearchProducts  *search_products.Query
	SuggestProducts *suggest_products.Query
	ListTaxonomy    *list_taxonomy.Query
	TopGenres       *top_genres.Query
	TopCategories   *top_categories.Query
	TopProducts     *top_products.Query
	LowStock        *low_stock.Query
	SalesSummary    *sales_summary.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)

	productRepo := repo.NewProductRepo(client)
	taxonomyRepo := repo.NewTaxonomyRepo(client)
	orderRepo := repo.NewOrderRepo(client)
	catalogReadModel := repo.NewCatalogReadModel(client)
	orderReadModel := repo.NewOrderReadModel(client)

	services := &Services{
		CreateProduct:     create_product.NewInteractor(productRepo, comm, clk),
		UpdateProduct:     update_product.NewInteractor(productRepo, comm),
		DeleteProduct:     delete_product.NewInteractor(productRepo, comm),
		SaveTaxonomy:      save_taxonomy.NewInteractor(taxonomyRepo, comm),
		DeleteTaxonomy:    delete_taxonomy.NewInteractor(taxonomyRepo, comm),
		PlaceOrder:        place_order.NewInteractor(productRepo, orderRepo, comm, clk),
		UpdateOrderStatus: update_order_status.NewInteractor(orderRepo, comm, nil, clk),

		ListProducts:    list_products.NewQuery(catalogReadModel, taxonomyRepo),
		SearchProducts:  search_products.NewQuery(catalogReadModel),
		SuggestProducts: suggest_products.NewQuery(catalogReadModel),
		ListTaxonomy:    list_taxonomy.NewQuery(taxonomyRepo),
		TopGenres:       top_genres.NewQuery(orderReadModel),
		TopCategories:   top_categories.NewQuery(orderReadModel, catalogReadModel),
		TopProducts:     top_products.NewQuery(orderReadModel, catalogReadModel),
		LowStock:        low_stock.NewQuery(catalogReadModel),
		SalesSummary:    sales_summary.NewQuery(orderReadModel, catalogReadModel),

		Clock:  clk,
		Client: client,
	}

	return services, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
