package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusProcessing, OrderStatusProcessed, true},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusReceived, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, true},
		{OrderStatusProcessed, OrderStatusProcessing, false},
		{OrderStatusProcessing, OrderStatusProcessing, false},
		{OrderStatusReceived, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusProcessing, OrderStatus("Lost"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusShipped.IsValid())
	assert.Equal(t, "Send you", string(OrderStatusShipped))
	assert.False(t, OrderStatus("shipped").IsValid())
}
