package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
	"gorm.io/gorm"
)

// OrderService provides methods to record orders and their items
type OrderService interface {
	// ListOrders retrieves one page of orders with their details
	ListOrders(ctx context.Context, params pagination.Params) ([]models.Order, pagination.Meta, error)
	// CreateOrder creates an order and then its details referencing the new order.
	// Both rows are written in one transaction.
	CreateOrder(ctx context.Context, details models.OrderDetails) (models.Order, error)
	// AddItem creates an order item and links it to an existing order
	AddItem(ctx context.Context, orderID uint, item models.OrderItem) (models.OrderItem, error)
	// AssignItemOption links a product option to an order item. When priceID is set
	// the charged option price is recorded as well.
	AssignItemOption(ctx context.Context, itemID, optionID uint, priceID *uint) (models.OrderItemToOrderOptionLink, error)
}

type orderService struct {
	store *store.Store
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(s *store.Store) OrderService {
	return &orderService{store: s}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Details")
}

func (s *orderService) ListOrders(ctx context.Context, params pagination.Params) ([]models.Order, pagination.Meta, error) {
	return store.List[models.Order](ctx, s.store, params, withDetails)
}

func (s *orderService) CreateOrder(ctx context.Context, details models.OrderDetails) (models.Order, error) {
	var order models.Order
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Create(ctx, &order); err != nil {
			return err
		}
		details.ID = 0
		details.OrderID = &order.ID
		return tx.Create(ctx, &details)
	})
	if err != nil {
		return models.Order{}, err
	}
	order.Details = &details
	return order, nil
}

func (s *orderService) AddItem(ctx context.Context, orderID uint, item models.OrderItem) (models.OrderItem, error) {
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Get(ctx, &models.Order{}, orderID); err != nil {
			return err
		}
		if err := tx.Create(ctx, &item); err != nil {
			return err
		}
		return tx.Create(ctx, &models.OrderToOrderItemLink{OrderID: &orderID, ItemID: &item.ID})
	})
	if err != nil {
		return models.OrderItem{}, err
	}
	return item, nil
}

func (s *orderService) AssignItemOption(ctx context.Context, itemID, optionID uint, priceID *uint) (models.OrderItemToOrderOptionLink, error) {
	link := models.OrderItemToOrderOptionLink{ItemID: &itemID, OptionID: &optionID}
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Create(ctx, &link); err != nil {
			return err
		}
		if priceID == nil {
			return nil
		}
		return tx.Create(ctx, &models.OrderItemOption{PriceID: priceID, OptionID: &optionID})
	})
	if err != nil {
		return models.OrderItemToOrderOptionLink{}, err
	}
	return link, nil
}
