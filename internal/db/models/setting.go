// Package models contains database model definitions.
package models

import "gorm.io/datatypes"

// Setting is a keyed JSON document. Singleton site content (hero, about, branding) lives here.
type Setting struct {
	ID    uint64         `gorm:"primaryKey"`
	Name  string         `gorm:"unique;size:50;not null"`
	Value datatypes.JSON `gorm:"not null"`
}
