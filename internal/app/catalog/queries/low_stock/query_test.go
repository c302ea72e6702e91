package low_stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

type fakeCatalog struct {
	contracts.CatalogReadModel

	lastThreshold int64
	products      []*contracts.ProductDTO
}

func (f *fakeCatalog) ListLowStock(ctx context.Context, threshold int64) ([]*contracts.ProductDTO, error) {
	f.lastThreshold = threshold
	return f.products, nil
}

func TestExecute_DefaultThreshold(t *testing.T) {
	catalog := &fakeCatalog{products: []*contracts.ProductDTO{{ProductID: "p1", TotalStock: 2}}}
	query := NewQuery(catalog)

	result, err := query.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(DefaultThreshold), catalog.lastThreshold)
}

func TestExecute_ExplicitThreshold(t *testing.T) {
	catalog := &fakeCatalog{}
	query := NewQuery(catalog)

	_, err := query.Execute(context.Background(), &Request{Threshold: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(20), catalog.lastThreshold)
}
