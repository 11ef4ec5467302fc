package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector builds the GORM dialector for the configured driver.
func (d DatabaseConfig) Dialector() (gorm.Dialector, error) {
	switch d.Driver {
	case "mysql":
		return mysql.Open(d.mysqlDSN()), nil
	case "postgres":
		return postgres.Open(d.postgresDSN()), nil
	case "sqlite":
		return sqlite.Open(d.sqliteDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}

func (d DatabaseConfig) mysqlDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	charsetParam := "charset=utf8mb4&parseTime=True&loc=Local"

	// 自动切换连接方式
	if d.UseUnixSock {
		return fmt.Sprintf("%s:%s@unix(%s)/%s?%s",
			d.Username,
			d.Password,
			d.Host, // 这里host存储的是socket路径
			d.DBName,
			charsetParam)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
		charsetParam)
}

func (d DatabaseConfig) postgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.DBName, d.SSLMode)
}

func (d DatabaseConfig) sqliteDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("file:%s.db?_foreign_keys=on", d.DBName)
}

func (d DatabaseConfig) gormLogger() logger.Interface {
	switch d.LogLevel {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}

// InitDB opens the database and applies the pool settings.
func (c *Config) InitDB() (*gorm.DB, error) {
	return OpenDB(c.Database)
}

// OpenDB opens a GORM handle for d. Driver errors are translated into GORM's
// ErrDuplicatedKey/ErrForeignKeyViolated where the dialect supports it.
func OpenDB(d DatabaseConfig) (*gorm.DB, error) {
	dialector, err := d.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         d.gormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite has a single writer, and every ":memory:" connection is a separate database.
	if d.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(d.MinPoolSize)
	sqlDB.SetMaxOpenConns(d.MaxPoolSize)

	return db, nil
}
