package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseloc/models"
)

// OutlineItem is one module of a course outline, annotated with whether the
// requested language has content for it.
type OutlineItem struct {
	ModuleID   string  `json:"module_id"`
	OrderIndex int     `json:"order_index"`
	HasLocale  bool    `json:"has_locale"`
	Title      *string `json:"title"`
}

// Outline is the ordered module listing for one language.
type Outline struct {
	Lang  string        `json:"lang"`
	Items []OutlineItem `json:"items"`
}

// CreateModule appends a module to a course with order_index one past the
// current maximum. The parent course row is locked for the duration of the
// transaction so two concurrent creates cannot read the same maximum.
func (s *Store) CreateModule(courseID, authorID string) (*models.Module, error) {
	module := models.Module{
		ID:       uuid.New().String(),
		CourseID: courseID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := lockForUpdate(tx).Where("id = ?", courseID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if course.AuthorID != authorID {
			return ErrPermissionDenied
		}

		var maxOrder int
		if err := tx.Model(&models.Module{}).
			Where("course_id = ?", courseID).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		module.OrderIndex = maxOrder + 1

		return tx.Create(&module).Error
	})
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// CreateModuleLocale adds a language's title/summary to a module. Ownership
// is resolved through the parent course; a module has no owner of its own.
// The insert is attempted directly: a conflicting row stays untouched and
// the operation fails with ErrConflict.
func (s *Store) CreateModuleLocale(moduleID, authorID, lang, title, summary string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		course, err := s.courseOfModule(tx, moduleID)
		if err != nil {
			return err
		}
		if course.AuthorID != authorID {
			return ErrPermissionDenied
		}

		locale := models.ModuleLocale{
			ModuleID: moduleID,
			Lang:     lang,
			Title:    truncate(title, models.MaxTitleLen),
			Summary:  truncate(summary, models.MaxBodyLen),
		}
		if err := tx.Create(&locale).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return nil
	})
}

// UpdateModuleLocale patches a module locale in place with the same coalesce
// semantics as UpdateCourseLocale.
func (s *Store) UpdateModuleLocale(moduleID, authorID, lang string, title, summary *string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		course, err := s.courseOfModule(tx, moduleID)
		if err != nil {
			return err
		}
		if course.AuthorID != authorID {
			return ErrPermissionDenied
		}

		var locale models.ModuleLocale
		if err := tx.Where("module_id = ? AND lang = ?", moduleID, lang).First(&locale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if title != nil {
			updates["title"] = truncate(*title, models.MaxTitleLen)
		}
		if summary != nil {
			updates["summary"] = truncate(*summary, models.MaxBodyLen)
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&locale).Updates(updates).Error
	})
}

// GetOutline is a public read returning the course's modules ordered by
// order_index, each annotated with locale presence for the requested lang.
func (s *Store) GetOutline(courseID, lang string) (*Outline, error) {
	var course models.Course
	if err := s.db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var modules []models.Module
	if err := s.db.Where("course_id = ?", courseID).Order("order_index asc").Find(&modules).Error; err != nil {
		return nil, err
	}

	outline := &Outline{Lang: lang, Items: make([]OutlineItem, 0, len(modules))}
	if len(modules) == 0 {
		return outline, nil
	}

	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	var locales []models.ModuleLocale
	if err := s.db.Where("module_id IN ? AND lang = ?", ids, lang).Find(&locales).Error; err != nil {
		return nil, err
	}
	byModule := make(map[string]*models.ModuleLocale, len(locales))
	for i := range locales {
		byModule[locales[i].ModuleID] = &locales[i]
	}

	for _, m := range modules {
		item := OutlineItem{ModuleID: m.ID, OrderIndex: m.OrderIndex}
		if loc, ok := byModule[m.ID]; ok {
			item.HasLocale = true
			item.Title = &loc.Title
		}
		outline.Items = append(outline.Items, item)
	}
	return outline, nil
}

// courseOfModule loads a module's parent course, mapping a missing module to
// ErrPermissionDenied: callers cannot own what does not exist.
func (s *Store) courseOfModule(tx *gorm.DB, moduleID string) (*models.Course, error) {
	var module models.Module
	if err := tx.Where("id = ?", moduleID).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	var course models.Course
	if err := tx.Where("id = ?", module.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	return &course, nil
}
