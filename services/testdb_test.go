package services

import (
	"testing"

	"backend/configs"
	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled :memory: connection is a separate database; keep one
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func newSandwichService(t *testing.T) (*SandwichService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewSandwichService(db, repository.NewSandwichRepository(db)), db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db)), db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) entity.Customer {
	t.Helper()
	cust := entity.Customer{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&cust).Error)
	return cust
}

func seedSandwich(t *testing.T, db *gorm.DB, name string, price float64) entity.Sandwich {
	t.Helper()
	sw := entity.Sandwich{Name: name, Price: price}
	require.NoError(t, db.Create(&sw).Error)
	return sw
}

func f64(v float64) *float64 { return &v }

func strs(v ...string) *[]string { return &v }
