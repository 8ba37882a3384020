package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// MenuService provides methods to manage menus and their categories
type MenuService interface {
	// ListMenus retrieves one page of menus
	ListMenus(ctx context.Context, params pagination.Params) ([]models.Menu, pagination.Meta, error)
	// CreateMenu creates a new menu
	CreateMenu(ctx context.Context, menu models.Menu) (models.Menu, error)
	// ListCategories retrieves one page of categories
	ListCategories(ctx context.Context, params pagination.Params) ([]models.Category, pagination.Meta, error)
	// CreateCategory creates a new category attached to an existing menu
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

type menuService struct {
	store *store.Store
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(s *store.Store) MenuService {
	return &menuService{store: s}
}

func (s *menuService) ListMenus(ctx context.Context, params pagination.Params) ([]models.Menu, pagination.Meta, error) {
	return store.List[models.Menu](ctx, s.store, params)
}

func (s *menuService) CreateMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	menu.Categories = nil
	if err := s.store.Create(ctx, &menu); err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (s *menuService) ListCategories(ctx context.Context, params pagination.Params) ([]models.Category, pagination.Meta, error) {
	return store.List[models.Category](ctx, s.store, params)
}

func (s *menuService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := s.store.Create(ctx, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}
