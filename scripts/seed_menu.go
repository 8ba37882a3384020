package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/schema"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type seedProduct struct {
	name     string
	price    string
	calories int
	tags     []string
}

// demo catalog: one menu, its categories and their products
var catalog = map[string][]seedProduct{
	"Pizzas": {
		{name: "Margherita", price: "10.99", calories: 800, tags: []string{"vegetarian"}},
		{name: "Pepperoni", price: "12.99", calories: 950, tags: []string{"spicy"}},
	},
	"Drinks": {
		{name: "Lemonade", price: "3.50", calories: 120, tags: []string{"vegetarian", "cold"}},
	},
}

func main() {
	// Parse command line flags
	path := flag.String("db", "restaurant.sqlite", "SQLite database file")
	menuName := flag.String("menu", "Main", "Name of the menu to create")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: *path})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	s := store.New(db)
	menus := services.NewMenuService(s)
	products := services.NewProductService(s)
	pricing := services.NewPricingService(s)

	menu, err := menus.CreateMenu(ctx, models.Menu{Name: *menuName})
	var conflict *schema.ConflictError
	if errors.As(err, &conflict) {
		fmt.Printf("Menu %q already exists, nothing to seed\n", *menuName)
		return
	}
	if err != nil {
		log.Fatal("Failed to create menu: ", err)
	}

	tags := map[string]uint{}
	for categoryName, items := range catalog {
		category, err := menus.CreateCategory(ctx, models.Category{Name: categoryName, MenuID: &menu.ID})
		if err != nil {
			log.Fatalf("Failed to create category %s: %v", categoryName, err)
		}
		for _, item := range items {
			price, err := pricing.CreatePrice(ctx, models.Pricing{Price: decimal.RequireFromString(item.price)})
			if err != nil {
				log.Fatal("Failed to create price: ", err)
			}
			product, err := products.CreateProduct(ctx, models.Product{
				Name:       item.name,
				PriceID:    &price.ID,
				Calories:   item.calories,
				CategoryID: &category.ID,
			})
			if err != nil {
				log.Fatalf("Failed to create product %s: %v", item.name, err)
			}
			for _, tagName := range item.tags {
				if _, ok := tags[tagName]; !ok {
					tag, err := products.CreateTag(ctx, models.ProductTag{Name: tagName})
					if err != nil {
						log.Fatalf("Failed to create tag %s: %v", tagName, err)
					}
					tags[tagName] = tag.ID
				}
				if _, err := products.AssignTag(ctx, product.ID, tags[tagName]); err != nil {
					log.Fatal("Failed to tag product: ", err)
				}
			}
			fmt.Printf("✓ %s / %s (%s)\n", categoryName, product.Name, price.Price.StringFixed(2))
		}
	}
	fmt.Printf("Menu %q seeded (ID: %d)\n", menu.Name, menu.ID)
}
