// Package history archives completed translations to Postgres for later
// auditing. Writes are record keeping only; translate calls never read back.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is one archived translation.
type Record struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RecordUUID     string    `gorm:"column:record_uuid;type:uuid;not null;unique"`
	Provider       string    `gorm:"column:provider;type:text;not null"`
	SourceLang     string    `gorm:"column:source_lang;type:text;not null"`
	TargetLang     string    `gorm:"column:target_lang;type:text;not null"`
	SourceText     string    `gorm:"column:source_text;type:text;not null"`
	TranslatedText string    `gorm:"column:translated_text;type:text;not null"`
	LatencyMS      *int      `gorm:"column:latency_ms;type:integer"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Record) TableName() string {
	return "translation_history"
}

// Store is a Postgres-backed translation archive.
type Store struct {
	gdb   *gorm.DB
	sqlDB *sql.DB
}

// Open connects to Postgres, applies the schema and returns a ready store.
func Open(ctx context.Context, databaseURL, logLevel string) (*Store, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	gdb, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(resolveGormLogLevel(logLevel)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get gorm sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(8)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := gdb.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto-migrate translation history: %w", err)
	}

	return &Store{gdb: gdb, sqlDB: sqlDB}, nil
}

// Save archives one translation. A missing RecordUUID is filled in.
func (s *Store) Save(ctx context.Context, record *Record) error {
	if s == nil || s.gdb == nil {
		return fmt.Errorf("history store is not initialized")
	}
	if record == nil {
		return fmt.Errorf("record is nil")
	}
	if strings.TrimSpace(record.RecordUUID) == "" {
		record.RecordUUID = uuid.NewString()
	}
	if err := s.gdb.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert translation record: %w", err)
	}
	return nil
}

// Recent lists the newest records, optionally filtered by provider.
func (s *Store) Recent(ctx context.Context, provider string, limit int) ([]Record, error) {
	if s == nil || s.gdb == nil {
		return nil, fmt.Errorf("history store is not initialized")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := s.gdb.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit)
	if trimmed := strings.TrimSpace(provider); trimmed != "" {
		query = query.Where("provider = ?", trimmed)
	}

	records := make([]Record, 0, limit)
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query translation records: %w", err)
	}
	return records, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func resolveGormLogLevel(appLogLevel string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(appLogLevel)) {
	case "trace", "debug":
		return logger.Info
	case "warn", "warning", "info", "":
		return logger.Warn
	case "silent":
		return logger.Silent
	default:
		return logger.Error
	}
}
