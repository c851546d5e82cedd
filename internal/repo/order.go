package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

type OrderStore struct {
	DB *gorm.DB
}

type NewOrder struct {
	UserID   uint
	Products []models.OrderLineItem
}

// Create inserts the order row and then each line item, one statement per
// item, inside a single transaction. If any insert fails nothing is kept.
func (s *OrderStore) Create(ctx context.Context, o NewOrder) (*models.Order, error) {
	order := models.Order{
		Status: models.OrderStatusActive,
		UserID: o.UserID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		added := make([]models.OrderLineItem, 0, len(o.Products))
		for _, item := range o.Products {
			row := models.OrderProduct{
				Quantity:  item.Quantity,
				OrderID:   order.ID,
				ProductID: item.ProductID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("add product %d: %w", item.ProductID, err)
			}
			added = append(added, row.LineItem())
		}
		order.Products = added
		return nil
	})
	if err != nil {
		return nil, storeErr(fmt.Sprintf("could not create order for user %d", o.UserID), err)
	}
	return &order, nil
}

// DeleteOrder removes the line items first and the order row second, in one
// transaction, and returns the order as it was before deletion.
func (s *OrderStore) DeleteOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			return err
		}
		items, err := lineItems(tx, order.ID)
		if err != nil {
			return err
		}
		order.Products = items

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
	if err != nil {
		return nil, storeErr(fmt.Sprintf("could not delete order %d", orderID), err)
	}
	return &order, nil
}

// GetOrderByUser returns the user's order in the given status together with
// its line items. When several match, the newest one wins.
func (s *OrderStore) GetOrderByUser(ctx context.Context, userID uint, status string) (*models.Order, error) {
	op := fmt.Sprintf("could not get %s order by user id: %d", status, userID)
	db := s.DB.WithContext(ctx)

	var order models.Order
	if err := db.Where("user_id = ? AND status = ?", userID, status).Order("id DESC").First(&order).Error; err != nil {
		return nil, storeErr(op, err)
	}

	items, err := lineItems(db, order.ID)
	if err != nil {
		return nil, storeErr(op, err)
	}
	order.Products = items
	return &order, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	op := fmt.Sprintf("could not list orders of user %d", userID)
	db := s.DB.WithContext(ctx)

	var orders []models.Order
	if err := db.Where("user_id = ?", userID).Order("id ASC").Find(&orders).Error; err != nil {
		return nil, storeErr(op, err)
	}
	if len(orders) == 0 {
		return []models.Order{}, nil
	}

	ids := make([]uint, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	var rows []models.OrderProduct
	if err := db.Where("order_id IN ?", ids).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr(op, err)
	}

	byOrder := make(map[uint][]models.OrderLineItem, len(orders))
	for _, r := range rows {
		byOrder[r.OrderID] = append(byOrder[r.OrderID], r.LineItem())
	}
	for i := range orders {
		orders[i].Products = byOrder[orders[i].ID]
		if orders[i].Products == nil {
			orders[i].Products = []models.OrderLineItem{}
		}
	}
	return orders, nil
}

func lineItems(db *gorm.DB, orderID uint) ([]models.OrderLineItem, error) {
	var rows []models.OrderProduct
	if err := db.Select("product_id", "quantity").Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]models.OrderLineItem, len(rows))
	for i, r := range rows {
		items[i] = r.LineItem()
	}
	return items, nil
}
