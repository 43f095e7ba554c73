// Package wishlist stores the products a guest session saved for later.
package wishlist

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
)

// ErrSessionEmpty is returned when adding an entry without session id or product id.
var ErrSessionEmpty = errors.New("session_id and product_id are required")

// List returns the wishlist of a session joined with the product data.
// Entries of deleted products are left out.
func List(db *gorm.DB, sessionID string) ([]models.WishlistEntry, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	entries := make([]models.WishlistEntry, 0)

	err := db.Table("wishlist AS w").
		Select("w.id, w.product_id, p.name, p.price, p.description, p.images, p.stock, p.category").
		Joins("JOIN products p ON w.product_id = p.id").
		Where("w.session_id = ?", sessionID).
		Order("w.id").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist of %s: %w", sessionID, err)
	}

	return entries, nil
}

// Add puts a product on the wishlist of a session. Adding the same product
// twice is not an error; the second call stores nothing and returns nil.
func Add(db *gorm.DB, sessionID, productID string) (*models.WishlistItem, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	if sessionID == "" || productID == "" {
		return nil, ErrSessionEmpty
	}

	item := &models.WishlistItem{SessionID: sessionID, ProductID: productID}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to add %s to wishlist of %s: %w", productID, sessionID, result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	return item, nil
}

// Delete removes the wishlist entry with the given id.
func Delete(db *gorm.DB, id uint64) error {
	return collection.Delete[models.WishlistItem](db, id)
}
