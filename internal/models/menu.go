package models

// Menu groups categories of products
type Menu struct {
	BaseModel
	Name       string     `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Categories []Category `gorm:"foreignKey:MenuID" json:"categories,omitempty"`
}

func (Menu) TableName() string {
	return "menus"
}

// Category belongs to a menu and groups products
type Category struct {
	BaseModel
	Name   string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	MenuID *uint  `gorm:"index" json:"menuId"`
}

func (Category) TableName() string {
	return "categories"
}

// Offer is a promotional banner shown alongside the menus
type Offer struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Subtitle string `gorm:"size:255" json:"subtitle"`
	Image    string `gorm:"size:2048" json:"image"`
}

func (Offer) TableName() string {
	return "offers"
}
