package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "inProcess", "inShipping", "delivered", "rejected"} {
		s, err := ParseOrderStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(raw), s)
	}

	_, err := ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to inProcess", StatusConfirmed, StatusInProcess, true},
		{"inProcess to inShipping", StatusInProcess, StatusInShipping, true},
		{"inShipping to delivered", StatusInShipping, StatusDelivered, true},
		{"pending skips to delivered", StatusPending, StatusDelivered, false},
		{"backwards transition", StatusInShipping, StatusConfirmed, false},
		{"reject from pending", StatusPending, StatusRejected, true},
		{"reject from inShipping", StatusInShipping, StatusRejected, true},
		{"delivered is terminal", StatusDelivered, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInShipping.IsTerminal())
}
