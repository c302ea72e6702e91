// Command seed loads a small demo catalog into the configured database:
// taxonomy vocabularies, a handful of products, and one delivered order
// so the stats endpoints have something to aggregate.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/save_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_order_status"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

type seedProduct struct {
	title      string
	category   string
	brand      string
	genre      string
	price      float64
	salePrice  float64
	totalStock int64
}

var products = []seedProduct{
	{"Dune", "Books", "Ace", "Sci-Fi", 20, 15, 40},
	{"Neuromancer", "Books", "Gollancz", "Sci-Fi", 18, 0, 25},
	{"The Hobbit", "Books", "HarperCollins", "Fantasy", 22, 0, 30},
	{"Wuthering Heights", "Books", "Penguin", "Romance", 12, 9.5, 15},
	{"Abbey Road", "Music", "Apple", "Rock", 28, 0, 10},
	{"Kind of Blue", "Music", "Columbia", "Jazz", 25, 19, 3},
}

func main() {
	ctx := context.Background()

	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		spannerDB = "projects/test-project/instances/dev-instance/databases/storefront-db"
	}

	if err := run(ctx, spannerDB); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed completed successfully")
}

func run(ctx context.Context, spannerDB string) error {
	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	productRepo := repo.NewProductRepo(client)
	taxonomyRepo := repo.NewTaxonomyRepo(client)
	orderRepo := repo.NewOrderRepo(client)

	saveTaxonomy := save_taxonomy.NewInteractor(taxonomyRepo, comm)
	createProduct := create_product.NewInteractor(productRepo, comm, clk)
	placeOrder := place_order.NewInteractor(productRepo, orderRepo, comm, clk)
	updateStatus := update_order_status.NewInteractor(orderRepo, comm, nil, clk)

	vocabularies := map[string][]string{
		"category": {"Books", "Music"},
		"brand":    {"Ace", "Gollancz", "HarperCollins", "Penguin", "Apple", "Columbia"},
		"genre":    {"Sci-Fi", "Fantasy", "Romance", "Rock", "Jazz"},
	}
	for kind, names := range vocabularies {
		for _, name := range names {
			if _, err := saveTaxonomy.Execute(ctx, &save_taxonomy.Request{Kind: kind, Name: name}); err != nil {
				log.Printf("Skipping taxonomy %s/%s: %v", kind, name, err)
			}
		}
	}

	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		productID, err := createProduct.Execute(ctx, &create_product.Request{
			Title:      p.title,
			Category:   p.category,
			Brand:      p.brand,
			Genre:      p.genre,
			Price:      domain.NewMoneyFromFloat(p.price),
			SalePrice:  domain.NewMoneyFromFloat(p.salePrice),
			TotalStock: p.totalStock,
		})
		if err != nil {
			return fmt.Errorf("failed to create product %q: %w", p.title, err)
		}
		productIDs = append(productIDs, productID)
		log.Printf("Created product %s (%s)", p.title, productID)
	}

	orderID, err := placeOrder.Execute(ctx, &place_order.Request{
		UserID: "demo-user",
		Items: []place_order.ItemRequest{
			{ProductID: productIDs[0], Quantity: 2},
			{ProductID: productIDs[2], Quantity: 1},
		},
		Address: domain.AddressInfo{
			Address: "1 Demo Street",
			City:    "Springfield",
			Pincode: "00001",
			Phone:   "555-0100",
		},
		PaymentMethod: "cod",
	})
	if err != nil {
		return fmt.Errorf("failed to place demo order: %w", err)
	}
	log.Printf("Placed demo order %s", orderID)

	// Walk the order to delivered so the stats endpoints see sales.
	for _, status := range []string{"confirmed", "inProcess", "inShipping", "delivered"} {
		if err := updateStatus.Execute(ctx, &update_order_status.Request{OrderID: orderID, Status: status}); err != nil {
			return fmt.Errorf("failed to advance demo order to %s: %w", status, err)
		}
	}

	return nil
}
