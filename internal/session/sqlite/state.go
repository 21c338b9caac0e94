package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// StateEntry is one persisted key-value pair. The console keeps its session
// state (token, serialized identity) here so it survives restarts, playing
// the role a browser's local storage plays for the web console.
type StateEntry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (StateEntry) TableName() string {
	return "state_entries"
}

type Storage struct {
	db *gorm.DB
}

// Open creates (or opens) the state database at path and migrates the
// key-value table.
func Open(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	return NewStorage(db)
}

// NewStorage wraps an existing gorm handle, migrating the table. Tests pass
// an in-memory sqlite handle here.
func NewStorage(db *gorm.DB) (*Storage, error) {
	if err := db.AutoMigrate(&StateEntry{}); err != nil {
		return nil, fmt.Errorf("migrate state table: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Get(key string) (string, bool, error) {
	var entry StateEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *Storage) Set(key, value string) error {
	entry := StateEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
}

func (s *Storage) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.Where("key IN ?", keys).Delete(&StateEntry{}).Error
}

// SQLDB exposes the underlying connection for health checks.
func (s *Storage) SQLDB() (*sql.DB, error) {
	return s.db.DB()
}
