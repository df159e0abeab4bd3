package database

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dealership/internal/config"
	"dealership/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Open подключается к БД (с повторами — postgres в docker поднимается не сразу)
// и прогоняет миграции.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to database", "driver", cfg.DBDriver, "attempt", i, "max_attempts", maxAttempts)

		db, err = gorm.Open(dialector(cfg.DBDriver, cfg.DBDSN), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}

		log.Warn("failed to connect to database", "error", err)
		if cfg.DBDriver == config.DriverSQLite {
			break
		}
		time.Sleep(retryBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("connected to database")
	return db, nil
}

// OpenSQLite открывает sqlite без повторов; используется в тестах.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(config.DriverSQLite, dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.CarMake{},
		&models.CarModel{},
		&models.ActivityLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func dialector(driver, dsn string) gorm.Dialector {
	if driver == config.DriverPostgres {
		return postgres.Open(dsn)
	}
	return sqlite.Open(withForeignKeys(dsn))
}

// каскадное удаление моделей в sqlite работает только с включёнными FK
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
