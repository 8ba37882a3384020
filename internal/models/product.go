package models

import "github.com/shopspring/decimal"

// Pricing stores a single currency amount referenced by products, options and order lines
type Pricing struct {
	BaseModel
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

func (Pricing) TableName() string {
	return "pricing"
}

// Product is an item that can be ordered
type Product struct {
	BaseModel
	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PriceID     *uint  `gorm:"index" json:"priceId"`
	Discount    int    `json:"discount"`
	Calories    int    `json:"calories"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:2048" json:"image"`
	CategoryID  *uint  `gorm:"index" json:"categoryId"`
}

func (Product) TableName() string {
	return "products"
}

type ProductTag struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

func (ProductTag) TableName() string {
	return "product_tags"
}

// ProductOption is an extra that can be added to a product, e.g. "Extra cheese"
type ProductOption struct {
	BaseModel
	Name    string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PriceID *uint  `gorm:"index" json:"priceId"`
}

func (ProductOption) TableName() string {
	return "product_options"
}

type ProductTagLink struct {
	BaseModel
	ProductID *uint `gorm:"index" json:"productId"`
	TagID     *uint `gorm:"index" json:"tagId"`
}

func (ProductTagLink) TableName() string {
	return "product_tag_links"
}

type ProductOptionLink struct {
	BaseModel
	ProductID *uint `gorm:"index" json:"productId"`
	OptionID  *uint `gorm:"index" json:"optionId"`
}

func (ProductOptionLink) TableName() string {
	return "product_option_links"
}
