// Package session keeps the admin sessions in a gofiber storage backend.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/dsn"
	"github.com/earg-org/earg-api/internal/db/models"
)

// CookieName is the cookie carrying the session id.
const CookieName = "session"

const table = "sessions"

var (
	// ErrNotFound is returned for unknown or expired session ids.
	ErrNotFound = errors.New("session not found")
	// ErrStorageNil is returned when the store has no backend.
	ErrStorageNil = errors.New("session storage is nil")
)

// Storage is the part of a gofiber storage backend the store uses.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Close() error
}

// Data represents the session data structure.
type Data struct {
	User      models.AdminUser `json:"user"`
	CreatedAt time.Time        `json:"created_at"`
}

// Store reads and writes sessions.
type Store struct {
	storage Storage
	expiry  time.Duration
}

// New returns a store keeping sessions in storage for expiry.
func New(storage Storage, expiry time.Duration) *Store {
	return &Store{storage: storage, expiry: expiry}
}

// Expiry returns the session lifetime.
func (s *Store) Expiry() time.Duration {
	return s.expiry
}

// Create starts a session for user and returns its id.
func (s *Store) Create(user models.AdminUser) (string, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return "", err
	}

	if err = s.Write(id, &Data{User: user, CreatedAt: time.Now().UTC()}); err != nil {
		return "", err
	}

	return id, nil
}

// Write writes the session data for the given session ID.
func (s *Store) Write(sessionID string, data *Data) error {
	if s == nil || s.storage == nil {
		return ErrStorageNil
	}

	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return s.storage.Set(sessionID, out, s.expiry) //nolint:wrapcheck
}

// Read reads the session data for the given session ID.
func (s *Store) Read(sessionID string) (*Data, error) {
	if s == nil || s.storage == nil {
		return nil, ErrStorageNil
	}

	if sessionID == "" {
		return nil, ErrNotFound
	}

	raw, err := s.storage.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	// backends return no bytes for missing and expired keys
	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	data := new(Data)
	if err = json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return data, nil
}

// Delete ends a session. Unknown ids are ignored.
func (s *Store) Delete(sessionID string) error {
	if s == nil || s.storage == nil {
		return ErrStorageNil
	}

	if sessionID == "" {
		return nil
	}

	return s.storage.Delete(sessionID) //nolint:wrapcheck
}

// Close releases the backend.
func (s *Store) Close() error {
	if s == nil || s.storage == nil {
		return nil
	}

	return s.storage.Close() //nolint:wrapcheck
}

// NewStorage opens the backend matching the gorm engine: the sessions live
// next to the content on postgres and mysql and in memory for sqlite.
// The gofiber constructors panic on connection errors, those are returned.
func NewStorage(cfg *config.Config) (storage Storage, err error) {
	defer func() {
		if p := recover(); p != nil {
			storage, err = nil, fmt.Errorf("failed to open session storage: %v", p)
		}
	}()

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		storage = sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         table,
		})
	case config.EngineSQLite:
		storage = memory.New()
	default:
		storage = sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.URI(cfg),
			Table:         table,
		})
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("session storage ready")

	return storage, nil
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	return hex.EncodeToString(b), nil
}
