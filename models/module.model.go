package models

import "time"

// Module represents a section within a course. OrderIndex is assigned as
// max+1 per course at creation and never renumbered.
type Module struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID   string `json:"course_id" gorm:"type:uuid;index;not null"`
	OrderIndex int    `json:"order_index" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
