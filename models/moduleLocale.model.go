package models

import "time"

// ModuleLocale holds one language's title and summary for a module.
type ModuleLocale struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	ModuleID string `json:"module_id" gorm:"type:uuid;uniqueIndex:idx_module_locale;not null"`
	Lang     string `json:"lang" gorm:"size:8;uniqueIndex:idx_module_locale;not null"`
	Title    string `json:"title" gorm:"size:120"`
	Summary  string `json:"summary" gorm:"size:4000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
