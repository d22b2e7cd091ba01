// Package models holds the gorm models of the local database.
package models

// Session is a persisted web session entry.
// ExpiresAt is a unix timestamp, 0 means the entry never expires.
type Session struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte
	ExpiresAt int64 `gorm:"index"`
}
