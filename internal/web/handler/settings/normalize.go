package settings

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrBodyNotObject is returned for a write body that is not a JSON object.
var ErrBodyNotObject = errors.New("request body must be a JSON object")

// envelopeFields in priority order. Frontend callers send list settings
// as {ids} or {categories} and everything else as {value}.
var envelopeFields = []string{"ids", "categories", "value"} //nolint:gochecknoglobals

var jsonNull = json.RawMessage("null") //nolint:gochecknoglobals

// Normalize returns the value a settings write body carries: the first
// present field of ids, categories and value. A field holding null counts
// as absent. A body with none of them stores null.
func Normalize(body []byte) (json.RawMessage, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, ErrBodyNotObject
	}

	for _, name := range envelopeFields {
		v, ok := fields[name]
		if ok && !bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return v, nil
		}
	}

	return jsonNull, nil
}
