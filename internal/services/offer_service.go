package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

type OfferService interface {
	ListOffers(ctx context.Context, params pagination.Params) ([]models.Offer, pagination.Meta, error)
	CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
}

type offerService struct {
	store *store.Store
}

func NewOfferService(s *store.Store) OfferService {
	return &offerService{store: s}
}

func (s *offerService) ListOffers(ctx context.Context, params pagination.Params) ([]models.Offer, pagination.Meta, error) {
	return store.List[models.Offer](ctx, s.store, params)
}

func (s *offerService) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if err := s.store.Create(ctx, &offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}
