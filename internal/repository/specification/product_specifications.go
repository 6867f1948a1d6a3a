package specification

import (
	"strings"

	"gorm.io/gorm"
)

// NameContains matches products whose name contains the given text,
// case-insensitively.
type NameContains struct {
	Text string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s.Text)+"%")
}

// ByCategory filters by category, case-insensitively.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(category) = ?", strings.ToLower(s.Category))
}

// ByStyle filters by style, case-insensitively.
type ByStyle struct {
	Style string
}

func (s ByStyle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(style) = ?", strings.ToLower(s.Style))
}

// ByAttributes matches the full (category, color, size, style) tuple,
// case-insensitively.
type ByAttributes struct {
	Category string
	Color    string
	Size     string
	Style    string
}

func (s ByAttributes) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Where("LOWER(category) = ?", strings.ToLower(s.Category)).
		Where("LOWER(color) = ?", strings.ToLower(s.Color)).
		Where("LOWER(size) = ?", strings.ToLower(s.Size)).
		Where("LOWER(style) = ?", strings.ToLower(s.Style))
}

// InStock keeps only products with remaining stock.
type InStock struct{}

func (s InStock) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("quantity > 0")
}
