package db

import (
	"shopcart/internal/config"
	"shopcart/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
}

// Migrate はテーブルを作成・更新する。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Item{},
		&model.Cart{},
		&model.CartItem{},
		&model.User{},
		&model.UserOrder{},
		&model.UserOrderItem{},
	)
}

// debugのときだけSQLを出す
func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
