package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/schema"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *store.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return store.New(db)
}

func count(t *testing.T, s *store.Store, model interface{}) int64 {
	var n int64
	require.NoError(t, s.DB().Model(model).Count(&n).Error)
	return n
}

func TestMenuService(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	service := NewMenuService(s)

	menu, err := service.CreateMenu(ctx, models.Menu{Name: "Dinner"})
	require.NoError(t, err)
	assert.NotZero(t, menu.ID)

	category, err := service.CreateCategory(ctx, models.Category{Name: "Pizza", MenuID: &menu.ID})
	require.NoError(t, err)
	assert.Equal(t, menu.ID, *category.MenuID)

	missing := uint(999)
	_, err = service.CreateCategory(ctx, models.Category{Name: "Pasta", MenuID: &missing})
	var refErr *schema.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "menus", refErr.References)

	categories, meta, err := service.ListCategories(ctx, pagination.Params{PageSize: 10, PageNo: 1})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Pizza", categories[0].Name)
	assert.Equal(t, int64(1), meta.Total)
}

func TestProductServiceUpdateProduct(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	menus := NewMenuService(s)
	products := NewProductService(s)

	menu, err := menus.CreateMenu(ctx, models.Menu{Name: "Dinner"})
	require.NoError(t, err)
	category, err := menus.CreateCategory(ctx, models.Category{Name: "Pizza", MenuID: &menu.ID})
	require.NoError(t, err)
	product, err := products.CreateProduct(ctx, models.Product{Name: "Margherita", Calories: 800})
	require.NoError(t, err)

	t.Run("patches only the given fields", func(t *testing.T) {
		discount := 10
		updated, err := products.UpdateProduct(ctx, product.ID, ProductPatch{
			Discount:   &discount,
			CategoryID: &category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Margherita", updated.Name)
		assert.Equal(t, 800, updated.Calories)
		assert.Equal(t, 10, updated.Discount)
		assert.Equal(t, category.ID, *updated.CategoryID)
	})

	t.Run("missing product", func(t *testing.T) {
		name := "Marinara"
		_, err := products.UpdateProduct(ctx, 999, ProductPatch{Name: &name})
		var notFound *schema.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, int64(1), count(t, s, &models.Product{}))
	})

	t.Run("unknown category leaves the product unchanged", func(t *testing.T) {
		missing := uint(999)
		_, err := products.UpdateProduct(ctx, product.ID, ProductPatch{CategoryID: &missing})
		var refErr *schema.ReferenceError
		require.ErrorAs(t, err, &refErr)

		var stored models.Product
		require.NoError(t, s.DB().First(&stored, product.ID).Error)
		assert.Equal(t, category.ID, *stored.CategoryID)
	})
}

func TestProductServiceLinks(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	products := NewProductService(s)
	prices := NewPricingService(s)

	product, err := products.CreateProduct(ctx, models.Product{Name: "Margherita"})
	require.NoError(t, err)
	tag, err := products.CreateTag(ctx, models.ProductTag{Name: "vegetarian"})
	require.NoError(t, err)
	price, err := prices.CreatePrice(ctx, models.Pricing{Price: decimal.RequireFromString("1.50")})
	require.NoError(t, err)
	option, err := products.CreateOption(ctx, models.ProductOption{Name: "extra cheese", PriceID: &price.ID})
	require.NoError(t, err)

	t.Run("same tag twice creates two links", func(t *testing.T) {
		_, err := products.AssignTag(ctx, product.ID, tag.ID)
		require.NoError(t, err)
		_, err = products.AssignTag(ctx, product.ID, tag.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count(t, s, &models.ProductTagLink{}))
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := products.AssignTag(ctx, product.ID, 999)
		var refErr *schema.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "tag", refErr.Field)
	})

	t.Run("option link", func(t *testing.T) {
		link, err := products.AssignOption(ctx, product.ID, option.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, *link.ProductID)
		assert.Equal(t, option.ID, *link.OptionID)
	})

	t.Run("duplicate option name", func(t *testing.T) {
		_, err := products.CreateOption(ctx, models.ProductOption{Name: "extra cheese"})
		var conflict *schema.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})
}

func TestPricingServiceRejectsNegativePrice(t *testing.T) {
	s := setupTestStore(t)
	prices := NewPricingService(s)

	_, err := prices.CreatePrice(context.Background(), models.Pricing{Price: decimal.NewFromInt(-1)})
	var validation *schema.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "price", validation.Field)
}

func TestOfferService(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	offers := NewOfferService(s)

	_, err := offers.CreateOffer(ctx, models.Offer{Title: "2x1", Image: "banner.png"})
	var validation *schema.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "image", validation.Field)

	offer, err := offers.CreateOffer(ctx, models.Offer{Title: "2x1", Image: "https://cdn.example.com/banner.png"})
	require.NoError(t, err)
	assert.NotZero(t, offer.ID)
}

func TestOrderServiceCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the order and its details", func(t *testing.T) {
		s := setupTestStore(t)
		orders := NewOrderService(s)

		order, err := orders.CreateOrder(ctx, models.OrderDetails{
			Total:    decimal.NewFromInt(100),
			Subtotal: decimal.NewFromInt(90),
			Tax:      decimal.NewFromInt(10),
		})
		require.NoError(t, err)
		assert.NotZero(t, order.ID)
		require.NotNil(t, order.Details)
		assert.Equal(t, order.ID, *order.Details.OrderID)

		listed, meta, err := orders.ListOrders(ctx, pagination.Params{PageSize: 10, PageNo: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), meta.Total)
		require.Len(t, listed, 1)
		require.NotNil(t, listed[0].Details)
		assert.True(t, decimal.NewFromInt(100).Equal(listed[0].Details.Total))
		assert.True(t, decimal.NewFromInt(90).Equal(listed[0].Details.Subtotal))
		assert.True(t, decimal.NewFromInt(10).Equal(listed[0].Details.Tax))
	})

	t.Run("invalid details roll the order back", func(t *testing.T) {
		s := setupTestStore(t)
		orders := NewOrderService(s)

		_, err := orders.CreateOrder(ctx, models.OrderDetails{
			Total:    decimal.NewFromInt(100),
			Subtotal: decimal.NewFromInt(90),
			Tax:      decimal.NewFromInt(150),
		})
		var validation *schema.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "tax", validation.Field)

		assert.Zero(t, count(t, s, &models.Order{}))
		assert.Zero(t, count(t, s, &models.OrderDetails{}))
	})
}

func TestOrderServiceItems(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	orders := NewOrderService(s)
	products := NewProductService(s)
	prices := NewPricingService(s)

	order, err := orders.CreateOrder(ctx, models.OrderDetails{})
	require.NoError(t, err)
	product, err := products.CreateProduct(ctx, models.Product{Name: "Margherita"})
	require.NoError(t, err)
	price, err := prices.CreatePrice(ctx, models.Pricing{Price: decimal.RequireFromString("2.00")})
	require.NoError(t, err)
	option, err := products.CreateOption(ctx, models.ProductOption{Name: "extra cheese"})
	require.NoError(t, err)

	t.Run("missing order", func(t *testing.T) {
		_, err := orders.AddItem(ctx, 999, models.OrderItem{ProductID: &product.ID, Quantity: 1})
		var notFound *schema.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "orders", notFound.Table)
		assert.Zero(t, count(t, s, &models.OrderItem{}))
	})

	var item models.OrderItem
	t.Run("adds and links an item", func(t *testing.T) {
		item, err = orders.AddItem(ctx, order.ID, models.OrderItem{ProductID: &product.ID, Quantity: 2})
		require.NoError(t, err)
		assert.NotZero(t, item.ID)

		var link models.OrderToOrderItemLink
		require.NoError(t, s.DB().First(&link).Error)
		assert.Equal(t, order.ID, *link.OrderID)
		assert.Equal(t, item.ID, *link.ItemID)
	})

	t.Run("unknown product rolls the item back", func(t *testing.T) {
		missing := uint(999)
		_, err := orders.AddItem(ctx, order.ID, models.OrderItem{ProductID: &missing, Quantity: 1})
		var refErr *schema.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, int64(1), count(t, s, &models.OrderItem{}))
	})

	t.Run("option without a price", func(t *testing.T) {
		link, err := orders.AssignItemOption(ctx, item.ID, option.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, item.ID, *link.ItemID)
		assert.Zero(t, count(t, s, &models.OrderItemOption{}))
	})

	t.Run("option with a price records the charge", func(t *testing.T) {
		_, err := orders.AssignItemOption(ctx, item.ID, option.ID, &price.ID)
		require.NoError(t, err)

		var charged models.OrderItemOption
		require.NoError(t, s.DB().First(&charged).Error)
		assert.Equal(t, price.ID, *charged.PriceID)
		assert.Equal(t, option.ID, *charged.OptionID)
		assert.Equal(t, int64(2), count(t, s, &models.OrderItemToOrderOptionLink{}))
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := orders.AssignItemOption(ctx, 999, option.ID, nil)
		var refErr *schema.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, int64(2), count(t, s, &models.OrderItemToOrderOptionLink{}))
	})
}
