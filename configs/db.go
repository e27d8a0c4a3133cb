package configs

import (
	"fmt"
	"strings"
	"time"

	"backend/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectionDB opens the database selected by DB_DRIVER and configures the
// connection pool. The handle is passed down to controllers and services
// explicitly; nothing reads it from a package global.
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	case "sqlite":
		dsn := cfg.DBSource
		// sqlite ships with foreign keys off; cascade rules depend on them,
		// and the DSN option applies to every pooled connection
		if !strings.Contains(dsn, "?") {
			dsn += "?_foreign_keys=on"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	// join table (many2many Sandwich<->Ingredient)
	if err := db.SetupJoinTable(&entity.Sandwich{}, "Ingredients", &entity.SandwichIngredient{}); err != nil {
		return err
	}

	// Migrate the schema
	return db.AutoMigrate(
		&entity.Ingredient{}, &entity.Sandwich{},
		&entity.Customer{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.PromoCode{},
	)
}
