package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("positive value", func(t *testing.T) {
		m := NewMoneyFromFloat(19.99)
		assert.InDelta(t, 19.99, m.Float64(), 0.0001)
		assert.True(t, m.IsPositive())
	})

	t.Run("zero value", func(t *testing.T) {
		m := NewMoneyFromFloat(0)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("negative value", func(t *testing.T) {
		m := NewMoneyFromFloat(-5)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromRat(t *testing.T) {
	m := NewMoneyFromRat(big.NewRat(2499, 100))
	assert.Equal(t, "24.99", m.String())

	t.Run("nil rat defaults to zero", func(t *testing.T) {
		assert.True(t, NewMoneyFromRat(nil).IsZero())
	})
}

func TestMoney_Add(t *testing.T) {
	m1 := NewMoneyFromRat(big.NewRat(100, 1))
	m2 := NewMoneyFromRat(big.NewRat(50, 1))

	assert.Equal(t, 150.0, m1.Add(m2).Float64())
}

func TestMoney_MulInt(t *testing.T) {
	m := NewMoneyFromRat(big.NewRat(1999, 100)) // 19.99

	total := m.MulInt(3)
	assert.Equal(t, "59.97", total.String())
}

func TestMoney_Cmp(t *testing.T) {
	low := NewMoneyFromRat(big.NewRat(10, 1))
	high := NewMoneyFromRat(big.NewRat(20, 1))

	assert.Equal(t, -1, low.Cmp(high))
	assert.Equal(t, 1, high.Cmp(low))
	assert.Equal(t, 0, low.Cmp(low.Copy()))
}

func TestMoney_CopyIsIndependent(t *testing.T) {
	m := NewMoneyFromRat(big.NewRat(10, 1))
	c := m.Copy()
	require.Equal(t, 0, m.Cmp(c))

	// Mutating through Rat must not alias the original.
	r := m.Rat()
	r.SetInt64(999)
	assert.Equal(t, 10.0, m.Float64())
}
