package models

import (
	"time"
)

// Setting is one entry of the key/value content store.
// Value holds the canonical JSON text of the document stored under Key.
type Setting struct {
	Key       string       `gorm:"primaryKey;size:191"`
	Value     JSONDocument `gorm:"not null"`
	UpdatedAt time.Time
}
