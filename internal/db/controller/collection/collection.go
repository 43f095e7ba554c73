// Package collection provides generic CRUD operations for the content tables
// that are plain lists of records keyed by id (gallery, stories, team, journey,
// programs, products, messages).
package collection

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const idQueryPattern = "id = ?"

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns all records of T in the given order, e.g. "id" or "id DESC".
func List[T any](db *gorm.DB, order string) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	items := make([]T, 0)

	q := db
	if order != "" {
		q = q.Order(order)
	}

	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %T: %w", items, err)
	}

	return items, nil
}

// Get returns the record of T with the given id.
func Get[T any](db *gorm.DB, id any) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item := new(T)

	result := db.Where(idQueryPattern, id).Limit(1).Find(item)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read %T %v: %w", item, id, result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return item, nil
}

// Create inserts item and fills in its generated fields.
func Create[T any](db *gorm.DB, item *T) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create %T: %w", item, err)
	}

	return nil
}

// Update replaces every column of the record with the given id by the
// values of item, zero values included. The id and creation time are kept.
// It returns the stored record.
func Update[T any](db *gorm.DB, id any, item *T) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	// mysql reports zero affected rows for unchanged values,
	// so existence is checked up front
	if _, err := Get[T](db, id); err != nil {
		return nil, err
	}

	err := db.Model(new(T)).
		Where(idQueryPattern, id).
		Select("*").
		Omit("id", "created_at").
		Updates(item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update %T %v: %w", item, id, err)
	}

	return Get[T](db, id)
}

// Delete removes the record of T with the given id.
// Deleting a missing record is not an error.
func Delete[T any](db *gorm.DB, id any) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Where(idQueryPattern, id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("failed to delete %T %v: %w", new(T), id, err)
	}

	return nil
}

// Count returns the number of records of T.
func Count[T any](db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	if err := db.Model(new(T)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %T: %w", new(T), err)
	}

	return n, nil
}
