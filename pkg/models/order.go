package models

import (
	"fmt"
	"time"
)

// Order represents a purchase placed by a user.
//
// Unlike products, orders are private: only the owning user may read
// them. Cross-user access by id is rejected with a forbidden error at
// the API layer.
type Order struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;not null;size:36" json:"user_id"`
	Date      time.Time `json:"date"`
	Note      string    `gorm:"size:1024" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Many-to-many relationship with products
	Products []Product `gorm:"many2many:order_products;" json:"products,omitempty"`
}

// TableName returns the table name for Order.
func (Order) TableName() string {
	return "orders"
}

// Validate checks if the order has valid configuration.
func (o *Order) Validate() error {
	if o.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

// BelongsTo reports whether the order is owned by the given user id.
func (o *Order) BelongsTo(userID string) bool {
	return o.UserID == userID
}
