// Package database 管理关系型数据库与 Redis 的全局连接。
package database

import (
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/pkg/log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open 按驱动名打开数据库并迁移偏好表。driver 取值 mysql 或 sqlite。
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if driver == "sqlite" {
		// SQLite 只允许一个写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)           // 设置空闲连接池中连接的最大数量
		sqlDB.SetMaxOpenConns(100)          // 设置打开数据库连接的最大数量
		sqlDB.SetConnMaxLifetime(time.Hour) // 设置了连接可复用的最大时间
	}

	if err := db.AutoMigrate(&model.Preference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences table: %w", err)
	}
	return db, nil
}

// InitDB 初始化全局数据库连接，失败时直接退出。
func InitDB(driver, dsn string) {
	db, err := Open(driver, dsn)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}
	DB = db
	log.Infof("%s database connected successfully", driver)
}
