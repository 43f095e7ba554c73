// Package product provides CRUD operations for storefront products.
package product

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
)

const idSuffixRange = 1000

// NewID generates a product id of the form p-<unix millis>-<0..999>.
func NewID(now time.Time) string {
	return fmt.Sprintf("p-%d-%d", now.UnixMilli(), rand.IntN(idSuffixRange)) //nolint:gosec
}

// List returns all products, oldest first.
func List(db *gorm.DB) ([]models.Product, error) {
	return collection.List[models.Product](db, "created_at, id")
}

// Get returns the product with the given id or collection.ErrNotFound.
func Get(db *gorm.DB, id string) (*models.Product, error) {
	return collection.Get[models.Product](db, id)
}

// Create stores p. An empty id is replaced by a generated one.
func Create(db *gorm.DB, p *models.Product) error {
	if p.ID == "" {
		p.ID = NewID(time.Now())
	}

	return collection.Create(db, p)
}

// Update replaces the product with the given id.
func Update(db *gorm.DB, id string, p *models.Product) (*models.Product, error) {
	return collection.Update(db, id, p)
}

// Delete removes the product with the given id. Wishlist rows pointing
// to it are removed as well.
func Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete wishlist entries of %s: %w", id, err)
		}

		return collection.Delete[models.Product](tx, id)
	})
}

// Count returns the number of stored products.
func Count(db *gorm.DB) (int64, error) {
	return collection.Count[models.Product](db)
}
