package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

func seedOrderData(t *testing.T, env *testEnv) (userID uint, productIDs []uint) {
	t.Helper()
	ctx := context.Background()

	res, err := env.Users.Register(ctx, repo.NewUser{Username: "buyer", Password: "pw"})
	require.NoError(t, err)
	buyer, err := env.Tokens.Verify(res)
	require.NoError(t, err)

	for _, name := range []string{"widget", "gadget"} {
		p, err := env.Products.Create(ctx, models.Product{Name: name, Price: 5, Category: "tools"})
		require.NoError(t, err)
		productIDs = append(productIDs, p.ID)
	}
	env.Recorder.Events = nil
	return buyer.ID, productIDs
}

func TestOrderService_CreateGetDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, pids := seedOrderData(t, env)

	order, err := env.Orders.Create(ctx, repo.NewOrder{
		UserID: userID,
		Products: []models.OrderLineItem{
			{ProductID: pids[0], Quantity: 2},
			{ProductID: pids[1], Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusActive, order.Status)
	assert.Len(t, order.Products, 2)

	got, err := env.Orders.GetOrderByUser(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.ElementsMatch(t, order.Products, got.Products)

	list, err := env.Users.ListOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := env.Orders.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, deleted.Products, 2)

	_, err = env.Orders.GetOrderByUser(ctx, userID, models.OrderStatusActive)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = env.Orders.DeleteOrder(ctx, order.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.Equal(t, []string{events.OrderCreated, events.OrderDeleted}, env.eventTypes())
}

func TestOrderService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, pids := seedOrderData(t, env)

	tests := []struct {
		name string
		in   repo.NewOrder
	}{
		{name: "missing user", in: repo.NewOrder{Products: []models.OrderLineItem{{ProductID: pids[0], Quantity: 1}}}},
		{name: "no products", in: repo.NewOrder{UserID: userID}},
		{name: "missing product id", in: repo.NewOrder{UserID: userID, Products: []models.OrderLineItem{{Quantity: 1}}}},
		{name: "zero quantity", in: repo.NewOrder{UserID: userID, Products: []models.OrderLineItem{{ProductID: pids[0]}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Orders.Create(ctx, tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Empty(t, env.Recorder.Events)
}

func TestOrderService_UnknownProductIsStoreError(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := seedOrderData(t, env)

	_, err := env.Orders.Create(context.Background(), repo.NewOrder{
		UserID:   userID,
		Products: []models.OrderLineItem{{ProductID: 9999, Quantity: 1}},
	})
	var se *repo.StoreError
	assert.ErrorAs(t, err, &se)
	assert.Empty(t, env.Recorder.Events)
}
