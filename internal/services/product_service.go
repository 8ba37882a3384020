package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// ProductPatch lists the product fields to change. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	PriceID     *uint
	Discount    *int
	Calories    *int
	Description *string
	Image       *string
	CategoryID  *uint
}

func (p ProductPatch) apply(product *models.Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.PriceID != nil {
		product.PriceID = p.PriceID
	}
	if p.Discount != nil {
		product.Discount = *p.Discount
	}
	if p.Calories != nil {
		product.Calories = *p.Calories
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.CategoryID != nil {
		product.CategoryID = p.CategoryID
	}
}

// ProductService provides methods to manage products, tags and options
type ProductService interface {
	// ListProducts retrieves one page of products
	ListProducts(ctx context.Context, params pagination.Params) ([]models.Product, pagination.Meta, error)
	// CreateProduct creates a new product
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	// UpdateProduct applies a partial update to an existing product
	UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (models.Product, error)
	// ListTags retrieves one page of product tags
	ListTags(ctx context.Context, params pagination.Params) ([]models.ProductTag, pagination.Meta, error)
	// CreateTag creates a new product tag
	CreateTag(ctx context.Context, tag models.ProductTag) (models.ProductTag, error)
	// ListOptions retrieves one page of product options
	ListOptions(ctx context.Context, params pagination.Params) ([]models.ProductOption, pagination.Meta, error)
	// CreateOption creates a new product option
	CreateOption(ctx context.Context, option models.ProductOption) (models.ProductOption, error)
	// AssignTag links a tag to a product. Existing links are not checked.
	AssignTag(ctx context.Context, productID, tagID uint) (models.ProductTagLink, error)
	// AssignOption links an option to a product. Existing links are not checked.
	AssignOption(ctx context.Context, productID, optionID uint) (models.ProductOptionLink, error)
}

type productService struct {
	store *store.Store
}

// NewProductService creates a new instance of ProductService
func NewProductService(s *store.Store) ProductService {
	return &productService{store: s}
}

func (s *productService) ListProducts(ctx context.Context, params pagination.Params) ([]models.Product, pagination.Meta, error) {
	return store.List[models.Product](ctx, s.store, params)
}

func (s *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if err := s.store.Create(ctx, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (models.Product, error) {
	var product models.Product
	err := s.store.Update(ctx, &product, id, func() error {
		patch.apply(&product)
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *productService) ListTags(ctx context.Context, params pagination.Params) ([]models.ProductTag, pagination.Meta, error) {
	return store.List[models.ProductTag](ctx, s.store, params)
}

func (s *productService) CreateTag(ctx context.Context, tag models.ProductTag) (models.ProductTag, error) {
	if err := s.store.Create(ctx, &tag); err != nil {
		return models.ProductTag{}, err
	}
	return tag, nil
}

func (s *productService) ListOptions(ctx context.Context, params pagination.Params) ([]models.ProductOption, pagination.Meta, error) {
	return store.List[models.ProductOption](ctx, s.store, params)
}

func (s *productService) CreateOption(ctx context.Context, option models.ProductOption) (models.ProductOption, error) {
	if err := s.store.Create(ctx, &option); err != nil {
		return models.ProductOption{}, err
	}
	return option, nil
}

func (s *productService) AssignTag(ctx context.Context, productID, tagID uint) (models.ProductTagLink, error) {
	link := models.ProductTagLink{ProductID: &productID, TagID: &tagID}
	if err := s.store.Create(ctx, &link); err != nil {
		return models.ProductTagLink{}, err
	}
	return link, nil
}

func (s *productService) AssignOption(ctx context.Context, productID, optionID uint) (models.ProductOptionLink, error) {
	link := models.ProductOptionLink{ProductID: &productID, OptionID: &optionID}
	if err := s.store.Create(ctx, &link); err != nil {
		return models.ProductOptionLink{}, err
	}
	return link, nil
}
