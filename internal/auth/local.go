package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/adminuser"
	"github.com/earg-org/earg-api/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{db: db}
}

// Authenticate authenticates an admin against the local database.
func (p *LocalProvider) Authenticate(username, password string) (*models.AdminUser, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := adminuser.GetByUsername(p.db, username)
	if errors.Is(err, adminuser.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
