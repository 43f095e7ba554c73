// Package setting provides the key/value content store on top of the settings table.
//
// Values are JSON documents whose shape depends on the key. They are stored in
// a canonical JSON text form and handed back as raw JSON; a missing key reads
// as a nil value, not as an error.
package setting

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/earg-org/earg-api/internal/db/models"
)

// ConflictPolicy decides what Upsert does when the key already exists.
type ConflictPolicy int

const (
	// Skip inserts the value only if the key is absent. Used when seeding,
	// so a redeploy never clobbers admin edits.
	Skip ConflictPolicy = iota
	// Overwrite replaces an existing value. Used by the admin API.
	Overwrite
)

// String implements fmt.Stringer.
func (p ConflictPolicy) String() string {
	switch p {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("ConflictPolicy(%d)", int(p))
	}
}

var (
	// ErrSettingNotFound is returned by Update when the key does not exist.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when writing a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrInvalidValue is returned when a value is not a single valid JSON document.
	ErrInvalidValue = errors.New("setting value is not valid json")
	// ErrUnknownPolicy is returned for a conflict policy other than Skip or Overwrite.
	ErrUnknownPolicy = errors.New("unknown conflict policy")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Canonicalize parses raw as one JSON document and serializes it again in
// compact form with sorted object keys. Numbers keep their literal text.
func Canonicalize(raw []byte) (datatypes.JSON, error) {
	var v any

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	// exactly one document
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrInvalidValue
	}

	return encode(v)
}

// Marshal serializes a Go value into the canonical form.
func Marshal(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return Canonicalize(raw)
}

func encode(v any) (datatypes.JSON, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return datatypes.JSON(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// byKey builds the key condition. The column is quoted by gorm, key is
// a reserved word in mysql.
func byKey(key string) map[string]any {
	return map[string]any{"key": key}
}

// Get returns the value stored under key.
// An absent or empty key yields a nil value and no error.
func Get(db *gorm.DB, key string) (datatypes.JSON, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if key == "" {
		return nil, nil
	}

	var s models.Setting

	result := db.Where(byKey(key)).Limit(1).Find(&s)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read setting %s: %w", key, result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	return datatypes.JSON(s.Value), nil
}

// Load decodes the value stored under key into out.
// It reports false and leaves out untouched when the key is absent.
func Load(db *gorm.DB, key string, out any) (bool, error) {
	value, err := Get(db, key)
	if err != nil || value == nil {
		return false, err
	}

	if err = json.Unmarshal(value, out); err != nil {
		return false, fmt.Errorf("failed to decode setting %s: %w", key, err)
	}

	return true, nil
}

// GetAll returns every stored setting keyed by name.
func GetAll(db *gorm.DB) (map[string]datatypes.JSON, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	out := make(map[string]datatypes.JSON, len(settings))
	for _, s := range settings {
		out[s.Key] = datatypes.JSON(s.Value)
	}

	return out, nil
}

// Upsert stores the JSON document raw under key using the given conflict
// policy and returns the value stored afterwards. With Skip and an existing
// key that is the value already present.
func Upsert(db *gorm.DB, key string, raw []byte, policy ConflictPolicy) (datatypes.JSON, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	value, err := Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	var onConflict clause.OnConflict

	switch policy {
	case Skip:
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}
	case Overwrite:
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}
	default:
		return nil, ErrUnknownPolicy
	}

	err = db.Clauses(onConflict).Create(&models.Setting{Key: key, Value: models.JSONDocument(value)}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return Get(db, key)
}

// Set serializes v and upserts it under key.
func Set(db *gorm.DB, key string, v any, policy ConflictPolicy) (datatypes.JSON, error) {
	raw, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	return Upsert(db, key, raw, policy)
}

// Update overwrites the value of an existing key. Unlike Upsert it never
// creates the key and returns ErrSettingNotFound instead.
func Update(db *gorm.DB, key string, raw []byte) error {
	if db == nil {
		return ErrDBNil
	}

	if key == "" {
		return ErrSettingKeyEmpty
	}

	value, err := Canonicalize(raw)
	if err != nil {
		return err
	}

	result := db.Model(&models.Setting{}).Where(byKey(key)).Update("value", value)
	if result.Error != nil {
		return fmt.Errorf("failed to update setting %s: %w", key, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
