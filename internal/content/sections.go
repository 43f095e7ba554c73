package content

import (
	"encoding/json"
	"fmt"
	"maps"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/setting"
)

// sectionDefaults are the fields the admin forms always show for object
// sections, whether or not they were ever stored.
var sectionDefaults = map[string]map[string]any{ //nolint:gochecknoglobals
	KeyHomeHero:  {"title": "", "subtitle": "", "image": ""},
	KeyAboutHero: {"title": "", "subtitle": "", "image": ""},
	KeyContactInfo: {
		"email":     "",
		"phone":     "",
		"address":   "",
		"instagram": "",
		"facebook":  "",
		"twitter":   "",
	},
}

// listSections are sections that are lists; a missing or malformed value reads as [].
var listSections = map[string]bool{ //nolint:gochecknoglobals
	KeyHomeProductIDs: true,
	KeyCategories:     true,
	KeyValues:         true,
	KeyImpactStats:    true,
}

// Section returns the document stored under key prepared for editing:
// object sections are merged over their defaults, list sections are never
// null. Other keys are returned as stored, JSON null when absent.
func Section(db *gorm.DB, key string) (datatypes.JSON, error) {
	stored, err := setting.Get(db, key)
	if err != nil {
		return nil, err
	}

	if defaults, ok := sectionDefaults[key]; ok {
		return mergeObject(defaults, stored)
	}

	if listSections[key] {
		var list []any
		if stored == nil || json.Unmarshal(stored, &list) != nil || list == nil {
			return datatypes.JSON(`[]`), nil
		}

		return stored, nil
	}

	if stored == nil {
		return datatypes.JSON(`null`), nil
	}

	return stored, nil
}

// mergeObject overlays the stored object on the defaults. A stored value
// that is not an object is ignored.
func mergeObject(defaults map[string]any, stored datatypes.JSON) (datatypes.JSON, error) {
	merged := maps.Clone(defaults)

	if stored != nil {
		var current map[string]any
		if err := json.Unmarshal(stored, &current); err == nil {
			maps.Copy(merged, current)
		}
	}

	out, err := setting.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to merge section: %w", err)
	}

	return out, nil
}
