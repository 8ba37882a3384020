package models

import "github.com/shopspring/decimal"

// Order carries no data of its own; amounts live in OrderDetails and lines in OrderItem
type Order struct {
	BaseModel
	Details *OrderDetails `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderDetails holds the caller-computed amounts of an order. Tax is a percentage.
type OrderDetails struct {
	BaseModel
	Total    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Subtotal decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(5,2)" json:"tax"`
	OrderID  *uint           `gorm:"uniqueIndex" json:"orderId"`
}

func (OrderDetails) TableName() string {
	return "order_details"
}

type OrderItem struct {
	BaseModel
	PriceID   *uint `gorm:"index" json:"priceId"`
	ProductID *uint `gorm:"index" json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type OrderItemOption struct {
	BaseModel
	PriceID  *uint `gorm:"index" json:"priceId"`
	OptionID *uint `gorm:"index" json:"optionId"`
}

func (OrderItemOption) TableName() string {
	return "order_item_options"
}

type OrderToOrderItemLink struct {
	BaseModel
	OrderID *uint `gorm:"index" json:"orderId"`
	ItemID  *uint `gorm:"index" json:"itemId"`
}

func (OrderToOrderItemLink) TableName() string {
	return "order_to_order_item_links"
}

type OrderItemToOrderOptionLink struct {
	BaseModel
	ItemID   *uint `gorm:"index" json:"itemId"`
	OptionID *uint `gorm:"index" json:"optionId"`
}

func (OrderItemToOrderOptionLink) TableName() string {
	return "order_item_to_order_option_links"
}

// All returns every table model in migration order
func All() []interface{} {
	return []interface{}{
		&Offer{}, &Menu{}, &Category{}, &Pricing{}, &Product{}, &ProductTag{},
		&ProductOption{}, &ProductTagLink{}, &ProductOptionLink{},
		&Order{}, &OrderDetails{}, &OrderItem{}, &OrderItemOption{},
		&OrderToOrderItemLink{}, &OrderItemToOrderOptionLink{},
	}
}
