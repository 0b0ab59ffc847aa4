package store

import (
	"context"
	"errors"
	"fmt"

	"adept_play/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend persists the slot as one row of the documents table.
// The table must exist; see db.Migrate.
type GormBackend struct {
	db   *gorm.DB
	name string
}

func NewGormBackend(gdb *gorm.DB, name string) *GormBackend {
	if name == "" {
		name = DefaultKey
	}
	return &GormBackend{db: gdb, name: name}
}

func (g *GormBackend) Read(ctx context.Context) ([]byte, error) {
	var doc db.Document
	err := g.db.WithContext(ctx).Where("name = ?", g.name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("select document %s: %w", g.name, err)
	}
	return doc.Body, nil
}

func (g *GormBackend) Write(ctx context.Context, body []byte) error {
	doc := db.Document{Name: g.name, Body: body}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("upsert document %s: %w", g.name, err)
	}
	return nil
}

func (g *GormBackend) Delete(ctx context.Context) error {
	if err := g.db.WithContext(ctx).Where("name = ?", g.name).Delete(&db.Document{}).Error; err != nil {
		return fmt.Errorf("delete document %s: %w", g.name, err)
	}
	return nil
}
