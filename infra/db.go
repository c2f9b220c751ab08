package infra

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gin-grocery/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	// 一意制約違反を gorm.ErrDuplicatedKey に変換させる
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

func SetupDB(cfg DBConfig, env string) (*gorm.DB, error) {
	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if cfg.Name != "" {
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres database %s: %w", cfg.Name, err)
		}
		slog.Info("Setup postgres database", "host", cfg.Host, "dbname", cfg.Name, "port", cfg.Port)
		return db, nil
	}

	db, err := OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	slog.Info("Setup sqlite database", "path", cfg.SQLitePath)
	return db, nil
}

// OpenSQLite は path に SQLite を開く。":memory:" の場合は接続を1本に絞る
// （接続ごとに別のインメモリDBになるため）。
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate は存在しないテーブルを作成する
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Group{}, &models.User{}, &models.CartItem{}, &models.BlacklistedToken{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
