package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db"
	"github.com/earg-org/earg-api/internal/db/controller/setting"
	"github.com/earg-org/earg-api/internal/db/models"
)

// resetTables are emptied by Reset. Wishlist and admin accounts survive.
func resetTables() []any {
	return []any{
		&models.Product{},
		&models.GalleryItem{},
		&models.Story{},
		&models.TeamMember{},
		&models.Milestone{},
		&models.Program{},
		&models.Setting{},
		&models.Message{},
		&models.Review{},
		&models.Order{},
	}
}

// Reset empties the content tables and writes data again, products included.
// Unlike the startup seed it discards every admin edit.
func Reset(ctx context.Context, gdb *gorm.DB, data Dataset) error {
	if gdb == nil {
		return ErrDBNil
	}

	gdb = gdb.WithContext(ctx)

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for _, table := range resetTables() {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error
			if err != nil {
				return fmt.Errorf("failed to clear %T: %w", table, err)
			}
		}

		log.Info().Msg("content tables cleared")

		if err := createAll(tx, data.Products); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		log.Info().Int("products", len(data.Products)).Msg("products seeded")

		return insertContent(tx, data, setting.Overwrite)
	})
}
