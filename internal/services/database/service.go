package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/imagify-art/imagify-backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrNotConfigured is returned by probes when no database is attached.
var ErrNotConfigured = errors.New("database not configured")

// Service wraps the optional database handle probed by the /test
// endpoint. The generation path never touches it. A nil *Service is
// valid and reports the database as unavailable.
type Service struct {
	db   *gorm.DB
	name string
}

// NewService opens the configured database. An empty URL yields a nil
// service, which callers may use freely through the nil-safe methods.
func NewService(cfg config.DatabaseConfig) (*Service, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	db, err := gorm.Open(dialectorFor(cfg.URL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Service{db: db, name: cfg.Name}, nil
}

// dialectorFor picks the driver from the DSN shape. Postgres URLs and
// key=value DSNs go to the postgres driver; anything else is treated as
// a sqlite file path.
func dialectorFor(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") || strings.Contains(url, "host=") {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

func (s *Service) Available() bool {
	return s != nil && s.db != nil
}

func (s *Service) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Ping verifies the underlying connection is alive.
func (s *Service) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrNotConfigured
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Tables lists up to limit relation names.
func (s *Service) Tables(ctx context.Context, limit int) ([]string, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}
	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	if len(tables) > limit {
		tables = tables[:limit]
	}
	return tables, nil
}
