package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPrepping, OrderStatusCooking, true},
		{OrderStatusPrepping, OrderStatusReady, true},
		{OrderStatusCooking, OrderStatusReady, true},
		{OrderStatusCooking, OrderStatusPrepping, false},
		{OrderStatusReady, OrderStatusCooking, false},
		{OrderStatusReady, OrderStatusPrepping, false},
		{OrderStatusPrepping, OrderStatusServed, false},
		{OrderStatusCooking, OrderStatusServed, false},
		{OrderStatusReady, OrderStatusServed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Active(t *testing.T) {
	assert.True(t, OrderStatusPrepping.Active())
	assert.True(t, OrderStatusCooking.Active())
	assert.True(t, OrderStatusReady.Active())
	assert.False(t, OrderStatusServed.Active())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPrepping.IsValid())
	assert.True(t, OrderStatusServed.IsValid())
	assert.False(t, OrderStatus("BURNT").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
