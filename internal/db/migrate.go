package db

import (
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the document table
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create the table and its primary key if missing
	if err := gdb.AutoMigrate(&Document{}); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
