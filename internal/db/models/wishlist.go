package models

import (
	"time"

	"gorm.io/datatypes"
)

// WishlistItem links a guest session to a product.
type WishlistItem struct {
	ID        uint64    `gorm:"primaryKey"                                   json:"id"`
	SessionID string    `gorm:"size:128;not null;uniqueIndex:idx_wishlist_session_product" json:"session_id"`
	ProductID string    `gorm:"size:64;not null;uniqueIndex:idx_wishlist_session_product"  json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name of the original schema.
func (WishlistItem) TableName() string { return "wishlist" }

// WishlistEntry is a wishlist row joined with its product.
type WishlistEntry struct {
	ID          uint64                      `json:"id"`
	ProductID   string                      `json:"product_id"`
	Name        string                      `json:"name"`
	Price       float64                     `json:"price"`
	Description string                      `json:"description"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Stock       int                         `json:"stock"`
	Category    string                      `json:"category"`
}
