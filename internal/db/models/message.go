package models

import "time"

// Message is a contact form submission.
type Message struct {
	ID      uint64    `gorm:"primaryKey"           json:"id"`
	Name    string    `gorm:"size:255"             json:"name"`
	Email   string    `gorm:"size:255"             json:"email"`
	Message string    `gorm:"type:text"            json:"message"`
	Read    bool      `gorm:"not null;default:false" json:"read"`
	Date    time.Time `gorm:"autoCreateTime;index" json:"date"`
}
