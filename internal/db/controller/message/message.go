// Package message stores contact form submissions.
package message

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
)

// List returns all messages, newest first.
func List(db *gorm.DB) ([]models.Message, error) {
	return collection.List[models.Message](db, "date DESC, id DESC")
}

// Create stores a new unread message.
func Create(db *gorm.DB, m *models.Message) error {
	m.Read = false
	return collection.Create(db, m)
}

// MarkRead sets the read flag of the message with the given id.
func MarkRead(db *gorm.DB, id uint64, read bool) (*models.Message, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	result := db.Model(&models.Message{}).Where("id = ?", id).Update("read", read)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark message %d: %w", id, result.Error)
	}

	return collection.Get[models.Message](db, id)
}

// Delete removes the message with the given id.
func Delete(db *gorm.DB, id uint64) error {
	return collection.Delete[models.Message](db, id)
}
