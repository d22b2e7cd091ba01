// Package sessionstore persists web sessions in the local sqlite database.
// It implements the storage interface fiber middlewares expect, so the web
// layer never touches gorm directly.
package sessionstore

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ponto-de-aula/ponto-de-aula/internal/db/models"
)

const keyQueryPattern = "key = ?"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Storage is a sqlite backed session storage.
type Storage struct {
	db *gorm.DB
}

// New creates a Storage on top of db.
func New(db *gorm.DB) (*Storage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Storage{db: db}, nil
}

// Get returns the value for key, or nil when the key is missing or expired.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	var entry models.Session

	result := s.db.Where(keyQueryPattern, key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	if entry.ExpiresAt != 0 && entry.ExpiresAt <= time.Now().Unix() {
		// lazily drop the stale entry
		_ = s.Delete(key)

		return nil, nil
	}

	return entry.Value, nil
}

// Set stores value under key. exp of 0 keeps the entry forever.
func (s *Storage) Set(key string, value []byte, exp time.Duration) error {
	if key == "" || len(value) == 0 {
		return nil
	}

	var expiresAt int64
	if exp != 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}

	entry := models.Session{Key: key, Value: value, ExpiresAt: expiresAt}

	return s.db.Save(&entry).Error
}

// Delete removes the entry for key. Missing keys are not an error.
func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}

	return s.db.Where(keyQueryPattern, key).Delete(&models.Session{}).Error
}

// Reset drops all sessions.
func (s *Storage) Reset() error {
	return s.db.Where("1 = 1").Delete(&models.Session{}).Error
}

// Close is a no-op, the gorm connection is owned by the daemon.
func (s *Storage) Close() error {
	return nil
}

// GC removes all expired entries. Run it periodically from the daemon.
func (s *Storage) GC() error {
	return s.db.
		Where("expires_at != 0 AND expires_at <= ?", time.Now().Unix()).
		Delete(&models.Session{}).Error
}
