package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type OrderService struct {
	Orders *repo.OrderStore
	Events events.Publisher
}

func (s *OrderService) Create(ctx context.Context, o repo.NewOrder) (*models.Order, error) {
	if o.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if len(o.Products) == 0 {
		return nil, fmt.Errorf("%w: products required", ErrValidation)
	}
	for _, item := range o.Products {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if item.Quantity == 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
	}

	order, err := s.Orders.Create(ctx, o)
	if err != nil {
		logging.FromContext(ctx).Warn("create_order_error", "user_id", o.UserID, "error", err)
		return nil, err
	}
	publish(ctx, s.Events, events.TopicOrders, order.ID, events.OrderEvent{
		Type:    events.OrderCreated,
		OrderID: order.ID,
		UserID:  order.UserID,
		Items:   len(order.Products),
	})
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.Orders.DeleteOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.TopicOrders, order.ID, events.OrderEvent{
		Type:    events.OrderDeleted,
		OrderID: order.ID,
		UserID:  order.UserID,
		Items:   len(order.Products),
	})
	return order, nil
}

// GetOrderByUser looks up the user's order in status, "active" when empty.
func (s *OrderService) GetOrderByUser(ctx context.Context, userID uint, status string) (*models.Order, error) {
	if status == "" {
		status = models.OrderStatusActive
	}
	return s.Orders.GetOrderByUser(ctx, userID, status)
}
