// Package db opens the local sqlite database used for web sessions
// and other client side state. All classroom data lives in the backend.
package db

import (
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/db/models"
)

// ErrEmptyPath is returned when no sqlite file path was configured.
var ErrEmptyPath = errors.New("db path can not be empty")

// Open the sqlite database and run the schema migration.
func Open(cfg config.DB) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if err = conn.AutoMigrate(
		&models.Session{},
	); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return conn, nil
}
