// internal/repository/postgres/store.go

// Package postgres implements the primary store driver on gorm. Records are
// document-flavored rows: nested blocks live in jsonb columns, lists in
// text[] columns, reviews as their own table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// Config mirrors the connection-pool knobs exposed through the env config.
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int // seconds
	LogLevel     string
}

type Store struct {
	db *gorm.DB
}

// Open establishes the pooled connection, pings it, and runs the
// auto-migrations. Any failure here is terminal for primary selection: the
// caller falls back to the secondary driver without retrying.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres: %w: no connection string configured", repository.ErrUnavailable)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if cfg.LogLevel != "silent" {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w: %v", repository.ErrUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres: get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres: %w: %v", repository.ErrUnavailable, err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("postgres: create uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.Product{},
		&models.Review{},
		&models.Artisan{},
		&models.User{},
		&models.Inquiry{},
		&models.NewsletterSubscriber{},
	)
	if err != nil {
		return fmt.Errorf("postgres: run migrations: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_region ON products(category, region)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_artisans_created_at ON artisans(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_inquiries_status ON inquiries(status, created_at DESC)",
	}
	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return fmt.Errorf("postgres: create index: %w", err)
		}
	}
	return nil
}

func (s *Store) Name() string { return "postgres" }

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// wrapErr maps gorm errors to the shared taxonomy. Anything that is not a
// missing record counts as the backend failing to complete the operation.
func wrapErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, repository.ErrUnavailable, err)
}

// withTransaction runs fn in a single database transaction.
func (s *Store) withTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin: %w: %v", repository.ErrUnavailable, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
