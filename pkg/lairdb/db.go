package lairdb

import (
	"log"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxDBRetries = 5

// MustConnectToDB will attempt to open the sqlite database at dbPath
// maxDBRetries times. If it isn't successful after that number of retries
// then it will call log.Fatalf(), which will cause the server to exit.
// Between retry attempts it will sleep for 3 seconds.
func MustConnectToDB(dbPath string) *gorm.DB {
	var (
		err error
		db  *gorm.DB
	)

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	retryCount := 1
	for {
		db, err = gorm.Open(sqlite.Open(dbPath), gormConfig)
		switch {
		case err == nil:
			// Connected to db, yay!
			return db
		case retryCount >= maxDBRetries:
			// Retry limit exceeded :-(
			log.Fatalf("Failed to open db (%s): %s", dbPath, err)
		default:
			// Couldn't open, so increment count, then wait a bit before trying again.
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}

// Migrate creates or updates the schema for all lair entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&lairmodel.Minion{},
		&lairmodel.EvilScheme{},
		&lairmodel.SecretBase{},
		&lairmodel.Equipment{},
	)
}
