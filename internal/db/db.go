package db

import (
	"fmt"  // Error formatting
	"time" // Row timestamps

	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/postgres"    // PostgreSQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
)

// Supported SQL drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Document holds one serialized database under a name
type Document struct {
	Name      string    `gorm:"primaryKey;size:191"` // Slot name
	Body      []byte    `gorm:"not null"`            // Serialized document
	UpdatedAt time.Time `gorm:"autoUpdateTime"`      // Last write
}

// TableName pins the table name regardless of naming strategy
func (Document) TableName() string { return "documents" }

// IsSQL reports whether driver is served by Open
func IsSQL(driver string) bool {
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return true
	}
	return false
}

// Open connects to the database for the given driver
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return gdb, nil
}
