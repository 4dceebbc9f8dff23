package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors returned by store operations. Controllers map these to
// HTTP statuses; anything else is an unclassified store failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("already exists")
)

// Store is the data access layer for courses, modules and their locales.
// It holds the process-lifetime connection pool handed to it at startup.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of the given connection pool.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// lockForUpdate adds a row-level write lock on dialects that support it.
// sqlite has no FOR UPDATE clause and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// truncate limits s to max runes so multibyte text is never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
