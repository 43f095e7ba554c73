package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents an item of the storefront.
// Category is expected to be a member of the categories setting, the
// database does not enforce it.
type Product struct {
	// ID is the client supplied or generated identifier (p-<millis>-<n>).
	ID          string   `gorm:"primaryKey;size:64"                json:"id"`
	Name        string   `gorm:"size:200;not null"                 json:"name"`
	Price       float64  `gorm:"not null"                          json:"price"`
	OfferPrice  *float64 `json:"offerPrice"`
	Category    string   `gorm:"size:100;index"                    json:"category"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Description string   `gorm:"type:text"                         json:"description"`
	Material    string   `gorm:"size:255"                          json:"material"`
	Dimensions  string   `gorm:"size:255"                          json:"dimensions"`
	Origin      string   `gorm:"size:255"                          json:"origin"`
	Impact      string   `gorm:"type:text"                         json:"impact"`
	Stock       int      `gorm:"not null;default:0"                json:"stock"`
	// Images is the ordered list of image URLs.
	Images datatypes.JSONSlice[string] `json:"images"`
	// Details is a list of structured detail records, kept as raw JSON.
	Details datatypes.JSON `json:"details"`
	// Story is the story object shown on the product page.
	Story     datatypes.JSON `json:"story"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
