package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"soapdesign-api/internal/models"
)

const (
	maxAttempts = 10
	retryDelay  = 2 * time.Second
)

// Connect открывает соединение с Postgres, повторяя попытки пока база поднимается.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 1; i <= maxAttempts; i++ {
		log.Info("trying to connect to DB", zap.Int("attempt", i), zap.Int("max_attempts", maxAttempts))

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         NewGormLogger(log),
			TranslateError: true,
		})
		if err == nil {
			log.Info("connected to DB successfully")
			return db, nil
		}

		log.Warn("failed to connect to DB", zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
}

// Migrate создаёт/обновляет таблицы всех моделей.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.ServiceType{},
		&models.ClientType{},
		&models.BudgetType{},
		&models.DeadlineType{},
		&models.Application{},
		&models.Assignment{},
		&models.Project{},
		&models.Image{},
		&models.Tag{},
		&models.ProjectTag{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
