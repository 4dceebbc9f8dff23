package store

import (
	"errors"

	"gorm.io/gorm"

	"courseloc/models"
)

// ReconcileSupportedLangs re-adds any locale language missing from its
// course's supported_langs array. The repair is additive only: langs are
// never pruned even if no locale row backs them. Each course is repaired in
// its own short transaction so the job never holds a table-wide lock.
// Returns the number of courses touched.
func (s *Store) ReconcileSupportedLangs() (int, error) {
	var ids []string
	if err := s.db.Model(&models.CourseLocale{}).
		Distinct("course_id").
		Pluck("course_id", &ids).Error; err != nil {
		return 0, err
	}

	repaired := 0
	for _, id := range ids {
		changed, err := s.reconcileCourse(id)
		if err != nil {
			return repaired, err
		}
		if changed {
			repaired++
		}
	}
	return repaired, nil
}

// reconcileCourse locks one course row and appends its missing locale langs.
func (s *Store) reconcileCourse(courseID string) (bool, error) {
	changed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := lockForUpdate(tx).Where("id = ?", courseID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// orphaned locale rows are not this job's problem
				return nil
			}
			return err
		}

		var langs []string
		if err := tx.Model(&models.CourseLocale{}).
			Where("course_id = ?", courseID).
			Order("lang asc").
			Pluck("lang", &langs).Error; err != nil {
			return err
		}

		for _, lang := range langs {
			if !course.HasLang(lang) {
				course.SupportedLangs = append(course.SupportedLangs, lang)
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return tx.Model(&course).Update("supported_langs", course.SupportedLangs).Error
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}
