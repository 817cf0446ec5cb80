package models

import (
	"fmt"
	"time"
)

// Product represents one item in the storefront catalog.
//
// Products are publicly readable; UserID records the user that created
// the product and is only used for catalog attribution, not access
// control.
type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	UserID      string    `gorm:"index;size:36" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}

// Validate checks if the product has valid configuration.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}
