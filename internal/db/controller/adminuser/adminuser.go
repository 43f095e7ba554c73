// Package adminuser manages the accounts of the admin API.
package adminuser

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
)

var (
	// ErrUserNotFound is returned when no admin has the requested username.
	ErrUserNotFound = errors.New("admin user not found")
	// ErrCredentialsEmpty is returned when username or password are empty.
	ErrCredentialsEmpty = errors.New("username and password cannot be empty")
)

// GetByUsername returns the admin with the given username.
func GetByUsername(db *gorm.DB, username string) (*models.AdminUser, error) {
	if db == nil {
		return nil, collection.ErrDBNil
	}

	var u models.AdminUser

	result := db.Where("username = ?", username).Limit(1).Find(&u)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query admin %s: %w", username, result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return &u, nil
}

// GetByID returns the admin with the given id.
func GetByID(db *gorm.DB, id uint64) (*models.AdminUser, error) {
	u, err := collection.Get[models.AdminUser](db, id)
	if errors.Is(err, collection.ErrNotFound) {
		return nil, ErrUserNotFound
	}

	return u, err
}

// EnsureInitial creates the initial admin account when the admin table is empty.
// It reports whether an account was created.
func EnsureInitial(db *gorm.DB, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, ErrCredentialsEmpty
	}

	count, err := collection.Count[models.AdminUser](db)
	if err != nil || count > 0 {
		return false, err
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	err = collection.Create(db, &models.AdminUser{
		Username: username,
		Password: hash,
		Active:   true,
	})

	return err == nil, err
}

// SetPassword replaces the password of an admin, creating the account
// if it does not exist yet.
func SetPassword(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return ErrCredentialsEmpty
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := GetByUsername(db, username)

	switch {
	case errors.Is(err, ErrUserNotFound):
		return collection.Create(db, &models.AdminUser{Username: username, Password: hash, Active: true})
	case err != nil:
		return err
	}

	u.Password = hash

	if err = db.Save(u).Error; err != nil {
		return fmt.Errorf("failed to save admin %s: %w", username, err)
	}

	return nil
}
