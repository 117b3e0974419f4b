package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vietanh2810/raffle-api/internal/config"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	return open(conf.DSN(), conf.MaxOpenConns)
}

// OpenPostgresWithURL connects to url instead of the configured host. The
// pool limits still come from conf.
func OpenPostgresWithURL(url string, conf *config.PostgresConfig) (*gorm.DB, error) {
	return open(url, conf.MaxOpenConns)
}

func open(dsn string, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = limitPool(db, maxOpenConns); err != nil {
		return nil, err
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	zap.L().Info("connected to postgres", zap.Int("max_open_conns", maxOpenConns))

	return db, nil
}

// limitPool caps open connections. Zero or less leaves the pool unbounded.
func limitPool(db *gorm.DB, maxOpenConns int) error {
	if maxOpenConns <= 0 {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	return nil
}
