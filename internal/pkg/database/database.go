package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/config"
	logger2 "portfolio-dashboard/internal/pkg/logger"
)

var DB *gorm.DB

// AllModels 返回全部GORM模型, 用于迁移
func AllModels() []interface{} {
	return []interface{}{
		&model.Project{},
		&model.NewsItem{},
		&model.Milestone{},
		&model.BudgetItem{},
		&model.Risk{},
		&model.TeamMember{},
	}
}

// Init 初始化数据库连接
func Init(cfg *config.DatabaseConfig) error {
	var err error

	// 解析SQL日志级别
	logLevel := getLogLevel(cfg.LogLevel)

	// 配置GORM
	gormConfig := &gorm.Config{
		Logger: logger.New(logger2.GetWriter(), logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logLevel,
			Colorful:      true,
		}).LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	// 连接数据库, 默认sqlite, 可通过driver配置切换mysql
	switch cfg.Driver {
	case "mysql":
		DB, err = gorm.Open(mysql.Open(cfg.GetDSN()), gormConfig)
	default:
		// DSN内启用foreign_keys/WAL/busy_timeout, 连接池内所有连接一致
		DB, err = gorm.Open(sqlite.Open(cfg.GetDSN()), gormConfig)
	}
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层sqlDB
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("获取数据库实例失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 建表
	if err := AutoMigrate(DB); err != nil {
		return err
	}
	if cfg.Driver != "mysql" {
		if err := createTriggers(DB); err != nil {
			return err
		}
	}

	return nil
}

// AutoMigrate 创建或更新全部表
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}

// createTriggers 创建sqlite触发器
// projects.updated_at由数据库自己刷新, 应用层无法绕过
func createTriggers(db *gorm.DB) error {
	const trigger = `
CREATE TRIGGER IF NOT EXISTS projects_touch_updated_at
AFTER UPDATE ON projects
FOR EACH ROW
WHEN NEW.updated_at <= OLD.updated_at
BEGIN
    UPDATE projects SET updated_at = STRFTIME('%Y-%m-%d %H:%M:%f', 'NOW') || '+00:00' WHERE id = NEW.id;
END;`
	if err := db.Exec(trigger).Error; err != nil {
		return fmt.Errorf("创建触发器失败: %w", err)
	}
	return nil
}

// Close 关闭数据库连接
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}

// getLogLevel 解析SQL日志级别
func getLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Silent // 默认关闭SQL日志
	}
}
