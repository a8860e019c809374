package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"property-backend/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// MySQLDSNFromURL converts a mysql:// URL (Railway/Heroku style) into
// the DSN format the driver expects.
func MySQLDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func ResolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return MySQLDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "property_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and
// seeds initial data. The handle is returned to the caller; services
// receive it explicitly instead of reading a package global.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Room{},
		&models.Reservation{},
		&models.Menu{},
		&models.MenuItem{},
		&models.RestaurantTable{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// SeedDatabase inserts the default admin and a small sample data set
// so a fresh install has something to show. Each block is skipped when
// rows already exist.
func SeedDatabase(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(EnvOrDefault("ADMIN_PASSWORD", "admin")), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin := models.User{Username: "admin", Password: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		logrus.Info("default admin seeded")
	}

	var propertyCount int64
	db.Model(&models.Property{}).Count(&propertyCount)
	if propertyCount == 0 {
		property := models.Property{
			Name:    "Grand Hotel",
			Type:    "Hotel",
			Rating:  4,
			Address: "123 Main Street, City Center",
		}
		if err := db.Create(&property).Error; err != nil {
			return fmt.Errorf("failed to seed property: %w", err)
		}

		rooms := []models.Room{
			{PropertyID: property.ID, RoomNumber: "101", RoomType: "Deluxe", Size: 25, Beds: "Queen", Price: 150.00, Status: models.RoomAvailable},
			{PropertyID: property.ID, RoomNumber: "102", RoomType: "Standard", Size: 20, Beds: "Twin", Price: 120.00, Status: models.RoomBooked},
			{PropertyID: property.ID, RoomNumber: "103", RoomType: "Suite", Size: 40, Beds: "King", Price: 250.00, Status: models.RoomAvailable},
			{PropertyID: property.ID, RoomNumber: "201", RoomType: "Deluxe", Size: 25, Beds: "Queen", Price: 150.00, Status: models.RoomAvailable},
			{PropertyID: property.ID, RoomNumber: "202", RoomType: "Standard", Size: 20, Beds: "Twin", Price: 120.00, Status: models.RoomAvailable},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}

		today := time.Now().Format("2006-01-02")
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		reservations := []models.Reservation{
			{GuestName: "John Doe", ContactNumber: "+1234567890", Source: "Booking.com", CheckIn: today, CheckOut: tomorrow, RoomID: rooms[1].ID, TotalPrice: 240.00, Status: models.ReservationConfirmed},
			{GuestName: "Jane Smith", ContactNumber: "+1987654321", Source: "Walk-in", CheckIn: today, CheckOut: tomorrow, RoomID: rooms[0].ID, TotalPrice: 150.00, Status: models.ReservationConfirmed},
		}
		if err := db.Create(&reservations).Error; err != nil {
			return fmt.Errorf("failed to seed reservations: %w", err)
		}
	}

	var menuCount int64
	db.Model(&models.Menu{}).Count(&menuCount)
	if menuCount == 0 {
		breakfast := models.Menu{Name: "Breakfast Menu", Description: "Fresh morning delights"}
		lunch := models.Menu{Name: "Lunch Menu", Description: "Hearty afternoon meals"}
		if err := db.Create(&breakfast).Error; err != nil {
			return fmt.Errorf("failed to seed menus: %w", err)
		}
		if err := db.Create(&lunch).Error; err != nil {
			return fmt.Errorf("failed to seed menus: %w", err)
		}

		items := []models.MenuItem{
			{MenuID: breakfast.ID, Name: "Pancakes", Description: "Fluffy pancakes with maple syrup", Price: 12.99, Category: "Main", Available: true, Tags: datatypes.JSON([]byte(`["breakfast"]`))},
			{MenuID: breakfast.ID, Name: "Coffee", Description: "Fresh brewed coffee", Price: 3.99, Category: "Beverage", Available: true},
			{MenuID: lunch.ID, Name: "Burger", Description: "Classic beef burger with fries", Price: 15.99, Category: "Main", Available: true},
			{MenuID: lunch.ID, Name: "Caesar Salad", Description: "Fresh romaine with caesar dressing", Price: 11.99, Category: "Salad", Available: true},
		}
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed menu items: %w", err)
		}
	}

	var tableCount int64
	db.Model(&models.RestaurantTable{}).Count(&tableCount)
	if tableCount == 0 {
		tables := []models.RestaurantTable{
			{TableNumber: 1, Seats: 2, Status: models.TableAvailable},
			{TableNumber: 2, Seats: 4, Status: models.TableOccupied},
			{TableNumber: 3, Seats: 6, Status: models.TableAvailable},
			{TableNumber: 4, Seats: 2, Status: models.TableReserved},
			{TableNumber: 5, Seats: 4, Status: models.TableAvailable},
		}
		if err := db.Create(&tables).Error; err != nil {
			return fmt.Errorf("failed to seed tables: %w", err)
		}
	}

	return nil
}
