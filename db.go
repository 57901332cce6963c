package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mercadolivro/bookstore-backend/config"
	"github.com/mercadolivro/bookstore-backend/entity"
)

func setupDatabase(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)

	if cfg.AutoMigrate {
		start := time.Now()
		if err := db.AutoMigrate(entity.Models()...); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Info("database migrated", zap.Duration("took", time.Since(start)))
	}
	return db, nil
}
