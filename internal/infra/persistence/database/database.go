/*
 * @Description: 数据库连接管理 (支持多种数据库)
 * @Author: 墨见寻
 * @Date: 2026-03-04 14:21:37
 * @LastEditTime: 2026-05-18 10:44:09
 * @LastEditors: 墨见寻
 */
package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mojianxun/newshub/pkg/config"
	"github.com/mojianxun/newshub/pkg/domain/model"
)

// NewGormDB 根据配置创建并返回一个 GORM 连接，支持 mysql / postgres / sqlite。
func NewGormDB(cfg *config.Config) (*gorm.DB, error) {
	driver := cfg.GetString(config.KeyDBType)
	if driver == "" {
		log.Println("提示: 配置中未指定 'Database.Type'，将默认使用 'sqlite'")
		driver = "sqlite"
	}

	dbUser := cfg.GetString(config.KeyDBUser)
	dbPass := cfg.GetString(config.KeyDBPassword)
	dbHost := cfg.GetString(config.KeyDBHost)
	dbPort := cfg.GetString(config.KeyDBPort)
	dbName := cfg.GetString(config.KeyDBName)

	logLevel := logger.Warn
	if cfg.GetBool(config.KeyDBDebug) {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "mysql", "mariadb":
		if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
			return nil, fmt.Errorf("MySQL 连接参数不完整 (需要 User, Host, Port, Name)")
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			dbUser, dbPass, dbHost, dbPort, dbName)
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	case "postgres":
		if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
			return nil, fmt.Errorf("PostgreSQL 连接参数不完整 (需要 User, Host, Port, Name)")
		}
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPass, dbName)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	case "sqlite", "sqlite3":
		dataDir := "./data"
		if mkErr := os.MkdirAll(dataDir, os.ModePerm); mkErr != nil {
			return nil, fmt.Errorf("无法创建 data 目录: %w", mkErr)
		}
		finalDBName := dbName
		if finalDBName == "" {
			finalDBName = "newshub.db"
		}
		finalPath := filepath.Join(dataDir, finalDBName)
		log.Printf("SQLite 数据库路径: %s", finalPath)

		// 必须启用外键约束，级联删除依赖它
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", finalPath)
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s (支持: mysql/mariadb, postgres, sqlite)", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("打开数据库连接失败 (驱动: %s): %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接池失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("无法 Ping 通数据库: %w", err)
	}

	log.Printf("%s 数据库连接池创建成功！", driver)
	return db, nil
}

// AutoMigrate 同步全部表结构与外键约束。
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Article{},
		&model.Comment{},
	); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	log.Println("数据库迁移完成。")
	return nil
}
