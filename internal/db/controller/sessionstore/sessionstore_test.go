package sessionstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/db"
	"github.com/ponto-de-aula/ponto-de-aula/internal/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Open(config.DB{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)

	return conn
}

func TestNewRequiresDB(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrDBNil)
}

func TestSetGetDelete(t *testing.T) {
	storage, err := New(openTestDB(t))
	require.NoError(t, err)

	require.NoError(t, storage.Set("sid-1", []byte(`{"user":"u1"}`), 0))

	got, err := storage.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"user":"u1"}`), got)

	// overwrite keeps a single entry per key
	require.NoError(t, storage.Set("sid-1", []byte(`{"user":"u2"}`), 0))

	got, err = storage.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"user":"u2"}`), got)

	require.NoError(t, storage.Delete("sid-1"))

	got, err = storage.Get("sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMissingKeyIsNotAnError(t *testing.T) {
	storage, err := New(openTestDB(t))
	require.NoError(t, err)

	got, err := storage.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, storage.Delete("nope"))
}

func TestExpiredEntryIsDropped(t *testing.T) {
	conn := openTestDB(t)
	storage, err := New(conn)
	require.NoError(t, err)

	expired := models.Session{
		Key:       "sid-old",
		Value:     []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}
	require.NoError(t, conn.Save(&expired).Error)

	got, err := storage.Get("sid-old")
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int64
	require.NoError(t, conn.Model(&models.Session{}).Count(&count).Error)
	assert.Zero(t, count, "expired entry must be removed on read")
}

func TestGC(t *testing.T) {
	conn := openTestDB(t)
	storage, err := New(conn)
	require.NoError(t, err)

	require.NoError(t, storage.Set("sid-live", []byte("fresh"), time.Hour))
	require.NoError(t, conn.Save(&models.Session{
		Key:       "sid-old",
		Value:     []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}).Error)

	require.NoError(t, storage.GC())

	var count int64
	require.NoError(t, conn.Model(&models.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := storage.Get("sid-live")
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), got)
}

func TestReset(t *testing.T) {
	storage, err := New(openTestDB(t))
	require.NoError(t, err)

	require.NoError(t, storage.Set("a", []byte("1"), 0))
	require.NoError(t, storage.Set("b", []byte("2"), 0))

	require.NoError(t, storage.Reset())

	got, err := storage.Get("a")
	require.NoError(t, err)
	assert.Nil(t, got)
}
