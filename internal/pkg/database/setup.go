package database

import (
	"fmt"
	"log"
	"time"

	"github.com/ChikaOnyekwere/ServiceHub/app/models"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// Setup opens the MySQL session used for one synchronization run and keeps
// the schema current. The handle is owned by the caller; close it via Close
// on every exit path.
func Setup() (*gorm.DB, error) {
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,  // data source name
			DefaultStringSize:         256,  // default size for string fields
			DisableDatetimePrecision:  true, // disable datetime precision, which not supported before MySQL 5.6
			DontSupportRenameIndex:    true, // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true, // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false,
		}), &gorm.Config{})
		if err == nil {
			if migErr := db.AutoMigrate(
				&models.ServiceCategory{},
				&models.ServiceType{},
				&models.ServicePermission{},
				&models.Setting{},
				&models.User{},
				&models.Profile{},
				&models.Subscription{},
				&models.Wallet{},
			); migErr != nil {
				return nil, fmt.Errorf("auto-migration failed: %w", migErr)
			}
			return db, nil
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("database: close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("database: close: %v", err)
	}
}
