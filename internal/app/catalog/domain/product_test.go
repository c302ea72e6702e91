package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct(
		"prod-1", "Dune", "Desert planet epic", "dune.jpg",
		"Books", "Ace", "Sci-Fi",
		NewMoneyFromFloat(20), NewMoneyFromFloat(15),
		10, 4.5, testTime,
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := newTestProduct(t)
		assert.Equal(t, "Dune", p.Title())
		assert.Equal(t, "Sci-Fi", p.Genre())
		assert.True(t, p.OnSale())
		assert.True(t, p.Changes().HasChanges())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := NewProduct("p", "", "", "", "", "", "", NewMoneyFromFloat(10), nil, 0, 0, testTime)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := NewProduct("p", "X", "", "", "", "", "", NewMoneyFromFloat(-1), nil, 0, 0, testTime)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("sale price at or above price rejected", func(t *testing.T) {
		_, err := NewProduct("p", "X", "", "", "", "", "", NewMoneyFromFloat(10), NewMoneyFromFloat(10), 0, 0, testTime)
		assert.ErrorIs(t, err, ErrInvalidSale)
	})

	t.Run("zero sale price means no sale", func(t *testing.T) {
		p, err := NewProduct("p", "X", "", "", "", "", "", NewMoneyFromFloat(10), ZeroMoney(), 0, 0, testTime)
		require.NoError(t, err)
		assert.False(t, p.OnSale())
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := NewProduct("p", "X", "", "", "", "", "", NewMoneyFromFloat(10), nil, -1, 0, testTime)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("review out of range rejected", func(t *testing.T) {
		_, err := NewProduct("p", "X", "", "", "", "", "", NewMoneyFromFloat(10), nil, 0, 5.5, testTime)
		assert.ErrorIs(t, err, ErrInvalidReview)
	})
}

func TestProduct_ChangeTracking(t *testing.T) {
	p := ReconstructProduct(
		"prod-1", "Dune", "", "", "Books", "Ace", "Sci-Fi",
		NewMoneyFromFloat(20), ZeroMoney(), 10, 0, testTime, testTime,
	)
	require.False(t, p.Changes().HasChanges())

	require.NoError(t, p.SetTitle("Dune Messiah"))
	p.SetGenre("Fiction")

	assert.True(t, p.Changes().Dirty(FieldTitle))
	assert.True(t, p.Changes().Dirty(FieldGenre))
	assert.False(t, p.Changes().Dirty(FieldBrand))
}

func TestProduct_SetTitleUnchangedStaysClean(t *testing.T) {
	p := ReconstructProduct(
		"prod-1", "Dune", "", "", "", "", "",
		NewMoneyFromFloat(20), ZeroMoney(), 10, 0, testTime, testTime,
	)

	require.NoError(t, p.SetTitle("Dune"))
	assert.False(t, p.Changes().HasChanges())
}

func TestProduct_SetPriceRevalidatesSale(t *testing.T) {
	p := newTestProduct(t) // price 20, sale 15

	err := p.SetPrice(NewMoneyFromFloat(12))
	assert.ErrorIs(t, err, ErrInvalidSale)

	require.NoError(t, p.SetPrice(NewMoneyFromFloat(25)))
	assert.Equal(t, 25.0, p.Price().Float64())
}

func TestProduct_SetSalePrice(t *testing.T) {
	p := newTestProduct(t)

	t.Run("must stay below price", func(t *testing.T) {
		assert.ErrorIs(t, p.SetSalePrice(NewMoneyFromFloat(20)), ErrInvalidSale)
	})

	t.Run("zero clears sale", func(t *testing.T) {
		require.NoError(t, p.SetSalePrice(ZeroMoney()))
		assert.False(t, p.OnSale())
	})
}

func TestProduct_SetTotalStock(t *testing.T) {
	p := newTestProduct(t)

	assert.ErrorIs(t, p.SetTotalStock(-1), ErrInvalidStock)
	require.NoError(t, p.SetTotalStock(0))
	assert.Equal(t, int64(0), p.TotalStock())
}
