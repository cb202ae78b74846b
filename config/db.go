package config

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"akkor-hotel-backend/models"
)

// Connect opens the MySQL connection pool and applies migrations. The
// handle is returned to the caller and injected into the services; there
// is no package-level database state.
func Connect(cfg *Config) (*gorm.DB, error) {
	lvl := logger.Warn
	switch cfg.LogLevel {
	case "debug":
		lvl = logger.Info
	case "error":
		lvl = logger.Error
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeMin) * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
}
