package postgres

import (
	"catering/internal/adapters/out/postgres/menurepo"
	"catering/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or alters every table the repositories and queries use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&orderrepo.CancellationDTO{},
	)
}
