package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

type ProductStore struct {
	DB *gorm.DB
}

func (s *ProductStore) Index(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, storeErr("could not get products", err)
	}
	return items, nil
}

func (s *ProductStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	p.ID = 0
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, storeErr("could not create product", err)
	}
	return &p, nil
}

func (s *ProductStore) Read(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("could not find product %d", id), err)
	}
	return &product, nil
}

// Update replaces name, price and category of the product with p.ID.
func (s *ProductStore) Update(ctx context.Context, p models.Product) (*models.Product, error) {
	var product models.Product
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ?", p.ID).
			Select("name", "price", "category").
			Updates(models.Product{Name: p.Name, Price: p.Price, Category: p.Category})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", p.ID).First(&product).Error
	})
	if err != nil {
		return nil, storeErr(fmt.Sprintf("could not update product %d", p.ID), err)
	}
	return &product, nil
}

// Delete removes the product and returns the row as it was.
func (s *ProductStore) Delete(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&product).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
	if err != nil {
		return nil, storeErr(fmt.Sprintf("could not delete product %d", id), err)
	}
	return &product, nil
}
