package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order is a placed storefront order. Items and CustomerInfo are kept
// as the JSON documents the checkout sent.
type Order struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Items        datatypes.JSON `json:"items"`
	Total        float64        `json:"total"`
	CustomerInfo datatypes.JSON `json:"customer_info"`
	CreatedAt    time.Time      `json:"created_at"`
}
