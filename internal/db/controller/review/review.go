// Package review stores product reviews and their moderation state.
package review

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
)

const newestFirst = "date DESC, id DESC"

// ListApproved returns the approved reviews of a product, newest first.
func ListApproved(db *gorm.DB, productID string) ([]models.Review, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	return collection.List[models.Review](
		db.Where("product_id = ? AND status = ?", productID, models.ReviewApproved),
		newestFirst,
	)
}

// ListPending returns the reviews waiting for moderation, newest first.
func ListPending(db *gorm.DB) ([]models.Review, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	return collection.List[models.Review](db.Where("status = ?", models.ReviewPending), newestFirst)
}

// Create stores a new pending review.
func Create(db *gorm.DB, r *models.Review) error {
	r.Status = models.ReviewPending
	return collection.Create(db, r)
}

// Approve releases the review with the given id to the storefront.
func Approve(db *gorm.DB, id uint64) (*models.Review, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	err := db.Model(&models.Review{}).Where("id = ?", id).Update("status", models.ReviewApproved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to approve review %d: %w", id, err)
	}

	return collection.Get[models.Review](db, id)
}

// Delete removes the review with the given id.
func Delete(db *gorm.DB, id uint64) error {
	return collection.Delete[models.Review](db, id)
}
