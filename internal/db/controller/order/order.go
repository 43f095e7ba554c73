// Package order stores placed storefront orders.
package order

import (
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
)

// Create stores a new order.
func Create(db *gorm.DB, o *models.Order) error {
	return collection.Create(db, o)
}

// Get returns the order with the given id or collection.ErrNotFound.
func Get(db *gorm.DB, id uint64) (*models.Order, error) {
	return collection.Get[models.Order](db, id)
}

// List returns all orders, newest first.
func List(db *gorm.DB) ([]models.Order, error) {
	return collection.List[models.Order](db, "created_at DESC, id DESC")
}
