package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/search"
)

// Indexer keeps the full-text product index in step with the store.
type Indexer interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type ProductService struct {
	Products *repo.ProductStore
	Index    Indexer
	Events   events.Publisher
}

type SearchResult struct {
	Data []models.Product `json:"data"`
	Meta search.Meta      `json:"meta"`
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.Products.Index(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.Products.Read(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	created, err := s.Products.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.reindex(ctx, *created)
	publish(ctx, s.Events, events.TopicProducts, created.ID, events.ProductEvent{
		Type:      events.ProductCreated,
		ProductID: created.ID,
		Name:      created.Name,
	})
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, p models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	updated, err := s.Products.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.reindex(ctx, *updated)
	publish(ctx, s.Events, events.TopicProducts, updated.ID, events.ProductEvent{
		Type:      events.ProductUpdated,
		ProductID: updated.ID,
		Name:      updated.Name,
	})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) (*models.Product, error) {
	deleted, err := s.Products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("unindex_failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicProducts, id, events.ProductEvent{
		Type:      events.ProductDeleted,
		ProductID: id,
		Name:      deleted.Name,
	})
	return deleted, nil
}

func (s *ProductService) Search(ctx context.Context, query string, page, size int) (*SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query required", ErrValidation)
	}
	if s.Index == nil {
		return nil, ErrSearchUnavailable
	}

	from, limit, page := search.Calculate(page, size)
	total, items, err := s.Index.Search(ctx, query, from, limit)
	if err != nil {
		logging.FromContext(ctx).Error("search_error", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	return &SearchResult{Data: items, Meta: search.NewMeta(page, limit, total)}, nil
}

func (s *ProductService) reindex(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("index_failed", "product_id", p.ID, "error", err)
	}
}

func validateProduct(p models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return nil
}
