package content

import (
	"errors"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db/controller/setting"
)

var (
	// ErrCategoryEmpty is returned for a blank category name.
	ErrCategoryEmpty = errors.New("category name cannot be empty")
	// ErrCategoryExists is returned when the category set already has the name.
	ErrCategoryExists = errors.New("category already exists")
	// ErrCategoryNotFound is returned when the category set lacks the name.
	ErrCategoryNotFound = errors.New("category not found")
)

// Categories returns the current category set, empty if never written.
func Categories(db *gorm.DB) ([]string, error) {
	return loadList(db, KeyCategories)
}

// AddCategory appends name to the category set.
func AddCategory(db *gorm.DB, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryEmpty
	}

	return modifyList(db, KeyCategories, func(categories []string) ([]string, error) {
		if slices.Contains(categories, name) {
			return nil, ErrCategoryExists
		}

		return append(categories, name), nil
	})
}

// RenameCategory replaces oldName by newName in place.
// Products still referencing oldName are not touched.
func RenameCategory(db *gorm.DB, oldName, newName string) ([]string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrCategoryEmpty
	}

	return modifyList(db, KeyCategories, func(categories []string) ([]string, error) {
		idx := slices.Index(categories, oldName)
		if idx < 0 {
			return nil, ErrCategoryNotFound
		}

		if newName != oldName && slices.Contains(categories, newName) {
			return nil, ErrCategoryExists
		}

		categories[idx] = newName

		return categories, nil
	})
}

// DeleteCategory removes name from the category set.
func DeleteCategory(db *gorm.DB, name string) ([]string, error) {
	return modifyList(db, KeyCategories, func(categories []string) ([]string, error) {
		idx := slices.Index(categories, name)
		if idx < 0 {
			return nil, ErrCategoryNotFound
		}

		return slices.Delete(categories, idx, idx+1), nil
	})
}

// StoreCategories is the category set of the storefront launch.
func StoreCategories() []string {
	return []string{"Handmade Crafts", "Sustainable Apparel", "Jewelry", "Eco-Friendly"}
}

// ReplaceCategories overwrites the stored category set with categories.
// The categories setting has to exist already.
func ReplaceCategories(db *gorm.DB, categories []string) error {
	raw, err := setting.Marshal(categories)
	if err != nil {
		return err
	}

	return setting.Update(db, KeyCategories, raw)
}

// HomeProductIDs returns the ids of the products featured on the home page.
func HomeProductIDs(db *gorm.DB) ([]string, error) {
	return loadList(db, KeyHomeProductIDs)
}

// ToggleHomeProduct adds id to the featured products or removes it if
// already featured. It reports whether the product is featured afterwards.
func ToggleHomeProduct(db *gorm.DB, id string) ([]string, bool, error) {
	var featured bool

	ids, err := modifyList(db, KeyHomeProductIDs, func(ids []string) ([]string, error) {
		if idx := slices.Index(ids, id); idx >= 0 {
			featured = false
			return slices.Delete(ids, idx, idx+1), nil
		}

		featured = true

		return append(ids, id), nil
	})

	return ids, featured, err
}

func loadList(db *gorm.DB, key string) ([]string, error) {
	list := make([]string, 0)

	if _, err := setting.Load(db, key, &list); err != nil {
		return nil, err
	}

	if list == nil {
		list = make([]string, 0)
	}

	return list, nil
}

// modifyList runs fn on the stored list of key and writes the result back.
func modifyList(db *gorm.DB, key string, fn func([]string) ([]string, error)) ([]string, error) {
	if db == nil {
		return nil, setting.ErrDBNil
	}

	var out []string

	err := db.Transaction(func(tx *gorm.DB) error {
		list, err := loadList(tx, key)
		if err != nil {
			return err
		}

		if out, err = fn(list); err != nil {
			return err
		}

		_, err = setting.Set(tx, key, out, setting.Overwrite)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
