package domain

import (
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using
// big.Rat. It stores the value as a rational number to avoid floating-point
// precision issues; Spanner persists it as NUMERIC.
type Money struct {
	rat *big.Rat
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// NewMoneyFromFloat creates a new Money instance from a float64.
// JSON request bodies carry prices as plain numbers.
func NewMoneyFromFloat(value float64) *Money {
	rat := new(big.Rat).SetFloat64(value)
	if rat == nil {
		rat = big.NewRat(0, 1)
	}
	return &Money{rat: rat}
}

// ZeroMoney returns a Money with value zero. A zero sale price means
// "no sale".
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Rat returns a copy of the underlying rational value for storage.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Float64 returns an approximate float representation for display.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	result := new(big.Rat).Add(m.rat, other.rat)
	return &Money{rat: result}
}

// MulInt multiplies this Money value by an integer quantity and returns
// a new Money instance.
func (m *Money) MulInt(qty int64) *Money {
	result := new(big.Rat).Mul(m.rat, new(big.Rat).SetInt64(qty))
	return &Money{rat: result}
}

// Cmp compares two Money values: -1 if m < other, 0 if equal, +1 if m > other.
func (m *Money) Cmp(other *Money) int {
	return m.rat.Cmp(other.rat)
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// Copy returns a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// String returns a decimal representation with two fractional digits.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}
