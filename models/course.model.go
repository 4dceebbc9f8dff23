package models

import (
	"time"

	"gorm.io/datatypes"
)

// Field limits shared by course and module locales
const (
	MaxTitleLen = 120
	MaxBodyLen  = 4000
)

// Course represents an authored course. User-visible text lives in
// CourseLocale rows; the course row itself only carries ownership, status
// and the redundant supported-language list used for fast listing.
type Course struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	AuthorID string `json:"author_id" gorm:"index;not null"`
	Status   string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED

	// TechTitle is a machine-internal label generated at creation.
	// It is never shown to users.
	TechTitle string `json:"-"`

	// SupportedLangs is an ordered, duplicate-free JSON array of language
	// codes. It is a superset of the langs that have a CourseLocale row,
	// appended to on locale creation and never pruned.
	SupportedLangs datatypes.JSONSlice[string] `json:"supported_langs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLang reports whether lang is already in SupportedLangs.
func (c *Course) HasLang(lang string) bool {
	for _, l := range c.SupportedLangs {
		if l == lang {
			return true
		}
	}
	return false
}
