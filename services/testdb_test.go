package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"property-backend/config"
	"property-backend/models"
)

// openTestDB gives each test its own in-memory store with the real
// schema. Connections are capped at one so every query sees the same
// memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, status models.RoomStatus, price float64) models.Room {
	t.Helper()
	room := models.Room{
		PropertyID: 1,
		RoomNumber: "101",
		RoomType:   "Deluxe",
		Price:      price,
		Status:     status,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return room
}

func seedTable(t *testing.T, db *gorm.DB, number int, status models.TableStatus) models.RestaurantTable {
	t.Helper()
	table := models.RestaurantTable{TableNumber: number, Seats: 4, Status: status}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{MenuID: 1, Name: name, Price: price, Available: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}
