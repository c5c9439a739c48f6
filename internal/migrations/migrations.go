package migrations

import (
	"gorm.io/gorm"

	"github.com/farmlink-ke/farm_market/internal/models"
)

// Creation order respects foreign keys: user first, then everything that
// references it, with the association tables built alongside their owning
// side. Drop order is the exact reverse. Constraint conflicts from the
// storage engine propagate untranslated.

var tables = []any{
	&models.User{},
	&models.ChatMessage{},
	&models.Farmer{},
	&models.Product{},
	&models.Order{},
	&models.Review{},
	&models.OrderProduct{},
	&models.ProductReview{},
	&models.Payment{},
}

var dropOrder = []string{
	"payment",
	"association_product_review",
	"association_order_product",
	"reviews",
	"order",
	"product",
	"farmer",
	"chat_message",
	"user",
}

// Upgrade creates all tables and constraints. It fails if any table already
// exists.
func Upgrade(db *gorm.DB) error {
	m := db.Migrator()
	for _, t := range tables {
		if err := m.CreateTable(t); err != nil {
			return err
		}
	}
	return nil
}

// Downgrade drops all tables in reverse dependency order. Missing tables are
// not an error.
func Downgrade(db *gorm.DB) error {
	m := db.Migrator()
	for _, name := range dropOrder {
		if !m.HasTable(name) {
			continue
		}
		if err := m.DropTable(name); err != nil {
			return err
		}
	}
	return nil
}

// AutoMigrate brings an existing database up to the current schema without
// dropping anything. The server uses it on startup; the migrate CLI uses
// Upgrade/Downgrade.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(tables...)
}
