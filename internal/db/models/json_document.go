package models

import (
	"database/sql/driver"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSONDocument is a JSON column holding any document, scalars included.
// SQLite gives a JSON column numeric affinity and would hand a document
// like 42 back as a number, so the column is text there.
type JSONDocument datatypes.JSON

// Value implements driver.Valuer.
func (d JSONDocument) Value() (driver.Value, error) {
	return datatypes.JSON(d).Value()
}

// Scan implements sql.Scanner. Numbers written by an older schema with
// numeric affinity are turned back into their JSON text.
func (d *JSONDocument) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		*d = strconv.AppendInt(nil, v, 10)
		return nil
	case float64:
		*d = strconv.AppendFloat(nil, v, 'g', -1, 64)
		return nil
	}

	return (*datatypes.JSON)(d).Scan(value)
}

// MarshalJSON writes the document as is.
func (d JSONDocument) MarshalJSON() ([]byte, error) {
	return datatypes.JSON(d).MarshalJSON()
}

// UnmarshalJSON keeps a copy of the raw document.
func (d *JSONDocument) UnmarshalJSON(b []byte) error {
	return (*datatypes.JSON)(d).UnmarshalJSON(b)
}

// GormDataType implements schema.GormDataTypeInterface.
func (JSONDocument) GormDataType() string {
	return "json"
}

// GormDBDataType picks text on sqlite and the native JSON type elsewhere.
func (JSONDocument) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}

	return datatypes.JSON(nil).GormDBDataType(db, field)
}
