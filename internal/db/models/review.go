package models

import "time"

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	// ReviewPending is the state of a new review, hidden from the storefront.
	ReviewPending ReviewStatus = "pending"
	// ReviewApproved is the state of a review an admin released.
	ReviewApproved ReviewStatus = "approved"
)

// Review is a customer review of a product.
type Review struct {
	ID        uint64       `gorm:"primaryKey"                             json:"id"`
	ProductID string       `gorm:"size:64;index"                          json:"product_id"`
	Rating    int          `json:"rating"`
	Comment   string       `gorm:"type:text"                              json:"comment"`
	Author    string       `gorm:"size:255"                               json:"author"`
	Status    ReviewStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Date      time.Time    `gorm:"autoCreateTime;index"                   json:"date"`
}
