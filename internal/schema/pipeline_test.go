package schema

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func writeOf(t *testing.T, db *gorm.DB, model interface{}) Write {
	w, err := WriteOf(context.Background(), db, model)
	require.NoError(t, err)
	return w
}

func TestEveryModelHasATableDefinition(t *testing.T) {
	db := setupTestDB(t)

	for _, model := range models.All() {
		w, err := WriteOf(context.Background(), db, model)
		require.NoError(t, err, "%T", model)
		assert.Len(t, w.Values, len(w.Table.Fields))
	}
}

func TestWriteOfProduct(t *testing.T) {
	db := setupTestDB(t)

	product := &models.Product{Name: "Margherita", Calories: 800, CategoryID: uintPtr(3)}
	product.ID = 7
	w := writeOf(t, db, product)

	assert.Equal(t, Products, w.Table)
	assert.Equal(t, uint(7), w.ID)
	assert.Equal(t, "Margherita", w.Values["name"])
	assert.Equal(t, 800, w.Values["calories"])
	assert.Equal(t, uint(3), w.Values["category_id"])
	assert.Nil(t, w.Values["price_id"])
}

func TestMandatory(t *testing.T) {
	db := setupTestDB(t)
	pipeline := DefaultPipeline()

	testCases := []struct {
		name  string
		model interface{}
		field string
	}{
		{name: "empty menu name", model: &models.Menu{}, field: "name"},
		{name: "blank tag name", model: &models.ProductTag{Name: "   "}, field: "name"},
		{name: "empty offer title", model: &models.Offer{Subtitle: "Two for one"}, field: "title"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.Run(context.Background(), db, writeOf(t, db, tt.model))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestFormat(t *testing.T) {
	db := setupTestDB(t)
	pipeline := DefaultPipeline()

	testCases := []struct {
		name    string
		model   interface{}
		invalid bool
	}{
		{name: "negative price", model: &models.Pricing{Price: decimal.NewFromFloat(-0.01)}, invalid: true},
		{name: "zero price", model: &models.Pricing{Price: decimal.Zero}},
		{name: "tax above 100", model: &models.OrderDetails{Tax: decimal.NewFromInt(101)}, invalid: true},
		{name: "negative total", model: &models.OrderDetails{Total: decimal.NewFromInt(-1)}, invalid: true},
		{name: "valid details", model: &models.OrderDetails{Total: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(90), Tax: decimal.NewFromInt(10)}},
		{name: "relative image url", model: &models.Offer{Title: "Lunch", Image: "images/lunch.png"}, invalid: true},
		{name: "absolute image url", model: &models.Offer{Title: "Lunch", Image: "https://cdn.example.com/lunch.png"}},
		{name: "no image", model: &models.Offer{Title: "Lunch"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.Run(context.Background(), db, writeOf(t, db, tt.model))
			if !tt.invalid {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestUnique(t *testing.T) {
	db := setupTestDB(t)
	pipeline := DefaultPipeline()
	existing := &models.Menu{Name: "Lunch"}
	require.NoError(t, db.Create(existing).Error)

	t.Run("duplicate value conflicts", func(t *testing.T) {
		err := pipeline.Run(context.Background(), db, writeOf(t, db, &models.Menu{Name: "Lunch"}))

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "menus", conflictErr.Table)
		assert.Equal(t, "name", conflictErr.Field)
	})

	t.Run("row being updated is excluded", func(t *testing.T) {
		err := pipeline.Run(context.Background(), db, writeOf(t, db, existing))
		assert.NoError(t, err)
	})

	t.Run("one-to-one relation is unique", func(t *testing.T) {
		order := &models.Order{}
		require.NoError(t, db.Create(order).Error)
		require.NoError(t, db.Create(&models.OrderDetails{OrderID: &order.ID}).Error)

		err := pipeline.Run(context.Background(), db, writeOf(t, db, &models.OrderDetails{OrderID: &order.ID}))

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "order", conflictErr.Field)
	})
}

func TestReferences(t *testing.T) {
	db := setupTestDB(t)
	pipeline := DefaultPipeline()
	menu := &models.Menu{Name: "Dinner"}
	require.NoError(t, db.Create(menu).Error)

	t.Run("existing row", func(t *testing.T) {
		err := pipeline.Run(context.Background(), db, writeOf(t, db, &models.Category{Name: "Mains", MenuID: &menu.ID}))
		assert.NoError(t, err)
	})

	t.Run("null relation", func(t *testing.T) {
		err := pipeline.Run(context.Background(), db, writeOf(t, db, &models.Category{Name: "Sides"}))
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		err := pipeline.Run(context.Background(), db, writeOf(t, db, &models.Category{Name: "Desserts", MenuID: uintPtr(999)}))

		var referenceErr *ReferenceError
		require.ErrorAs(t, err, &referenceErr)
		assert.Equal(t, "menu", referenceErr.Field)
		assert.Equal(t, "menus", referenceErr.References)
		assert.Equal(t, uint(999), referenceErr.ID)
	})
}

func TestFieldChecksRunBeforeReferenceChecks(t *testing.T) {
	db := setupTestDB(t)
	pipeline := DefaultPipeline()
	require.NoError(t, db.Create(&models.Category{Name: "Drinks"}).Error)

	err := pipeline.Run(context.Background(), db, writeOf(t, db, &models.Category{MenuID: uintPtr(42)}))
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	err = pipeline.Run(context.Background(), db, writeOf(t, db, &models.Category{Name: "Drinks", MenuID: uintPtr(42)}))
	var conflictErr *ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestLookup(t *testing.T) {
	table, ok := Lookup("product_tag_links")
	require.True(t, ok)
	assert.Len(t, table.Relations(), 2)

	_, ok = Lookup("pizzas")
	assert.False(t, ok)
}
