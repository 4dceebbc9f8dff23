package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseloc/models"
)

// CourseSummary is one row of the authored-courses listing, with the title
// resolved for the requested language.
type CourseSummary struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Title          *string   `json:"title"`
	Missing        bool      `json:"missing"`
	SupportedLangs []string  `json:"supported_langs"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CourseDetail is a public course read: metadata, the langs that actually
// have content, and the locale for the requested language when present.
type CourseDetail struct {
	ID             string               `json:"id"`
	Status         string               `json:"status"`
	SupportedLangs []string             `json:"supported_langs"`
	Langs          []string             `json:"langs"`
	Locale         *models.CourseLocale `json:"locale"`
	Missing        bool                 `json:"missing"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// CreateCourse inserts a course and its first locale in one transaction.
// When title is nil the locale gets the per-language placeholder title.
// Returns the new course id; no course-without-locale state is ever visible.
func (s *Store) CreateCourse(authorID, lang string, title, description *string) (string, error) {
	id := uuid.New().String()

	course := models.Course{
		ID:             id,
		AuthorID:       authorID,
		Status:         "DRAFT",
		TechTitle:      fmt.Sprintf("course-%.8s", id),
		SupportedLangs: []string{lang},
	}

	localeTitle := models.PlaceholderTitle(lang)
	if title != nil {
		localeTitle = *title
	}
	var desc string
	if description != nil {
		desc = *description
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		locale := models.CourseLocale{
			CourseID:    id,
			Lang:        lang,
			Title:       truncate(localeTitle, models.MaxTitleLen),
			Description: truncate(desc, models.MaxBodyLen),
		}
		return tx.Create(&locale).Error
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListCourses returns the acting user's courses with titles resolved for lang.
func (s *Store) ListCourses(authorID, lang string) ([]CourseSummary, error) {
	var courses []models.Course
	if err := s.db.Where("author_id = ?", authorID).Order("updated_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return []CourseSummary{}, nil
	}

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}

	var locales []models.CourseLocale
	if err := s.db.Where("course_id IN ? AND lang = ?", ids, lang).Find(&locales).Error; err != nil {
		return nil, err
	}
	byCourse := make(map[string]*models.CourseLocale, len(locales))
	for i := range locales {
		byCourse[locales[i].CourseID] = &locales[i]
	}

	summaries := make([]CourseSummary, len(courses))
	for i, c := range courses {
		summary := CourseSummary{
			ID:             c.ID,
			Status:         c.Status,
			Missing:        true,
			SupportedLangs: c.SupportedLangs,
			UpdatedAt:      c.UpdatedAt,
		}
		if loc, ok := byCourse[c.ID]; ok {
			summary.Title = &loc.Title
			summary.Missing = false
		}
		summaries[i] = summary
	}
	return summaries, nil
}

// GetCourse is a public read; no ownership check. Missing is set when the
// course exists but has no content for the requested language.
func (s *Store) GetCourse(courseID, lang string) (*CourseDetail, error) {
	var course models.Course
	if err := s.db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var locales []models.CourseLocale
	if err := s.db.Where("course_id = ?", courseID).Order("lang asc").Find(&locales).Error; err != nil {
		return nil, err
	}

	detail := &CourseDetail{
		ID:             course.ID,
		Status:         course.Status,
		SupportedLangs: course.SupportedLangs,
		Langs:          make([]string, 0, len(locales)),
		Missing:        true,
		UpdatedAt:      course.UpdatedAt,
	}
	for i := range locales {
		detail.Langs = append(detail.Langs, locales[i].Lang)
		if locales[i].Lang == lang {
			detail.Locale = &locales[i]
			detail.Missing = false
		}
	}
	return detail, nil
}

// CreateCourseLocale adds a language to a course: locale row inserted,
// supported_langs extended, updated_at refreshed, all in one transaction
// with the ownership check. A concurrent create of the same (course, lang)
// pair loses on the unique index and gets ErrConflict, never an overwrite.
func (s *Store) CreateCourseLocale(courseID, authorID, lang, title, description string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := lockForUpdate(tx).Where("id = ?", courseID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// a course that does not exist cannot be owned by the caller
				return ErrPermissionDenied
			}
			return err
		}
		if course.AuthorID != authorID {
			return ErrPermissionDenied
		}

		var existing int64
		if err := tx.Model(&models.CourseLocale{}).
			Where("course_id = ? AND lang = ?", courseID, lang).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrConflict
		}

		locale := models.CourseLocale{
			CourseID:    courseID,
			Lang:        lang,
			Title:       truncate(title, models.MaxTitleLen),
			Description: truncate(description, models.MaxBodyLen),
		}
		if err := tx.Create(&locale).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}

		if !course.HasLang(lang) {
			course.SupportedLangs = append(course.SupportedLangs, lang)
		}
		// Save also refreshes updated_at
		return tx.Save(&course).Error
	})
}

// UpdateCourseLocale patches a locale in place. Only supplied fields change;
// nil fields keep their previous value.
func (s *Store) UpdateCourseLocale(courseID, authorID, lang string, title, description *string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Where("id = ?", courseID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPermissionDenied
			}
			return err
		}
		if course.AuthorID != authorID {
			return ErrPermissionDenied
		}

		var locale models.CourseLocale
		if err := tx.Where("course_id = ? AND lang = ?", courseID, lang).First(&locale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if title != nil {
			updates["title"] = truncate(*title, models.MaxTitleLen)
		}
		if description != nil {
			updates["description"] = truncate(*description, models.MaxBodyLen)
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&locale).Updates(updates).Error
	})
}
