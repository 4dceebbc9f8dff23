package models

import "time"

// CourseLocale holds one language's title and description for a course.
// The unique index on (course_id, lang) is the arbiter for concurrent
// creates of the same pair.
type CourseLocale struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	CourseID    string `json:"course_id" gorm:"type:uuid;uniqueIndex:idx_course_locale;not null"`
	Lang        string `json:"lang" gorm:"size:8;uniqueIndex:idx_course_locale;not null"`
	Title       string `json:"title" gorm:"size:120"`
	Description string `json:"description" gorm:"size:4000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
