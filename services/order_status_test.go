package services_test

import (
	"testing"
	"treeuniformes_server/services"
	"treeuniformes_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from    tables.OrderStatus
		to      tables.OrderStatus
		allowed bool
	}{
		{tables.OrderStatusPending, tables.OrderStatusProcessing, true},
		{tables.OrderStatusPending, tables.OrderStatusCancelled, true},
		{tables.OrderStatusPending, tables.OrderStatusShipped, false},
		{tables.OrderStatusPending, tables.OrderStatusDelivered, false},
		{tables.OrderStatusProcessing, tables.OrderStatusShipped, true},
		{tables.OrderStatusProcessing, tables.OrderStatusCancelled, true},
		{tables.OrderStatusProcessing, tables.OrderStatusPending, false},
		{tables.OrderStatusShipped, tables.OrderStatusDelivered, true},
		{tables.OrderStatusShipped, tables.OrderStatusCancelled, false},
		{tables.OrderStatusDelivered, tables.OrderStatusShipped, false},
		{tables.OrderStatusDelivered, tables.OrderStatusCancelled, false},
		{tables.OrderStatusCancelled, tables.OrderStatusPending, false},
		{tables.OrderStatusCancelled, tables.OrderStatusProcessing, false},
	}

	for _, c := range cases {
		got := services.CanTransitionOrder(c.from, c.to)
		assert.Equal(t, c.allowed, got, "%s -> %s", c.from, c.to)
	}
}

func TestCanTransitionOrderRejectsSelfTransition(t *testing.T) {
	for _, status := range []tables.OrderStatus{
		tables.OrderStatusPending,
		tables.OrderStatusProcessing,
		tables.OrderStatusShipped,
		tables.OrderStatusDelivered,
		tables.OrderStatusCancelled,
	} {
		assert.False(t, services.CanTransitionOrder(status, status), "%s -> %s", status, status)
	}
}
