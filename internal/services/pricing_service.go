package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// PricingService manages the price rows referenced by products, options and order items
type PricingService interface {
	ListPrices(ctx context.Context, params pagination.Params) ([]models.Pricing, pagination.Meta, error)
	CreatePrice(ctx context.Context, price models.Pricing) (models.Pricing, error)
}

type pricingService struct {
	store *store.Store
}

func NewPricingService(s *store.Store) PricingService {
	return &pricingService{store: s}
}

func (s *pricingService) ListPrices(ctx context.Context, params pagination.Params) ([]models.Pricing, pagination.Meta, error) {
	return store.List[models.Pricing](ctx, s.store, params)
}

func (s *pricingService) CreatePrice(ctx context.Context, price models.Pricing) (models.Pricing, error) {
	if err := s.store.Create(ctx, &price); err != nil {
		return models.Pricing{}, err
	}
	return price, nil
}
