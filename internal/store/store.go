// Package store is the repository layer. One GORM session serves both
// supported SQL backends; the dialect is chosen from the database URL at
// startup and the query code is written once.
package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config tunes the shared connection pool.
type Config struct {
	MaxConnections int
	AcquireTimeout time.Duration
	IdleTimeout    time.Duration
	MaxLifetime    time.Duration
}

// DefaultConfig mirrors the deployment defaults: a small pool with a short
// acquisition bound.
func DefaultConfig() Config {
	return Config{
		MaxConnections: 10,
		AcquireTimeout: 3 * time.Second,
		IdleTimeout:    10 * time.Minute,
		MaxLifetime:    30 * time.Minute,
	}
}

// Store exposes the entity repositories over a shared *gorm.DB. It is safe
// for concurrent use; all consistency beyond single statements is delegated
// to the database engine.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// Open connects to the database named by databaseURL and runs migrations.
// Supported URL forms are "sqlite:<path>" (":memory:" included) and
// "postgres://..." / "postgresql://...".
func Open(databaseURL string, cfg Config) (*Store, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var (
		db  *gorm.DB
		err error
	)
	inMemory := false
	switch {
	case strings.HasPrefix(databaseURL, "sqlite:"):
		path := strings.TrimPrefix(databaseURL, "sqlite:")
		path = strings.TrimPrefix(path, "//")
		if path == "" {
			return nil, fmt.Errorf("sqlite URL missing a path")
		}
		inMemory = strings.Contains(path, ":memory:")
		dsn := path + "?_pragma=foreign_keys(1)"
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLog})
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{Logger: gormLog})
	default:
		return nil, fmt.Errorf("unsupported database URL format: use 'sqlite:' or 'postgres://'")
	}
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	maxConns := cfg.MaxConnections
	if maxConns <= 0 {
		maxConns = DefaultConfig().MaxConnections
	}
	if inMemory {
		// Each new connection to an in-memory SQLite database would see its
		// own empty schema, so the pool is pinned to a single connection.
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	if cfg.IdleTimeout > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.IdleTimeout)
	}
	if cfg.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)
	}

	if err := db.AutoMigrate(
		&ProjectModel{},
		&MiniatureModel{},
		&PhotoModel{},
		&RecipeModel{},
		&MiniatureRecipeModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	timeout := cfg.AcquireTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().AcquireTimeout
	}
	return &Store{db: db, timeout: timeout}, nil
}

// session returns a request-scoped DB handle whose work is bounded by the
// configured acquisition timeout.
func (s *Store) session() (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	return s.db.WithContext(ctx), cancel
}

// HealthCheck verifies the database answers a trivial query.
func (s *Store) HealthCheck() error {
	db, cancel := s.session()
	defer cancel()
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if one != 1 {
		return fmt.Errorf("health check: unexpected result %d", one)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
