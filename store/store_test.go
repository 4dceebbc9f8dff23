package store_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courseloc/database"
	"courseloc/models"
	"courseloc/store"
)

const (
	owner    = "author-1"
	stranger = "author-2"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one shared in-memory database per test so the pool's connections all
	// see the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	db := newTestDB(t)
	return store.New(db), db
}

func strPtr(s string) *string { return &s }

func newUUID(t *testing.T) string {
	t.Helper()
	return uuid.New().String()
}

func TestCreateCourse_CourseAndLocaleAtomic(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, strPtr("Go from scratch"), strPtr("An intro course."))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var course models.Course
	require.NoError(t, db.First(&course, "id = ?", id).Error)
	assert.Equal(t, owner, course.AuthorID)
	assert.Equal(t, "DRAFT", course.Status)
	assert.Equal(t, []string{models.LangEN}, []string(course.SupportedLangs))
	assert.NotEmpty(t, course.TechTitle)

	var locale models.CourseLocale
	require.NoError(t, db.First(&locale, "course_id = ? AND lang = ?", id, models.LangEN).Error)
	assert.Equal(t, "Go from scratch", locale.Title)
	assert.Equal(t, "An intro course.", locale.Description)
}

func TestCreateCourse_PlaceholderTitle(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangFR, nil, nil)
	require.NoError(t, err)

	var locale models.CourseLocale
	require.NoError(t, db.First(&locale, "course_id = ?", id).Error)
	assert.Equal(t, "Cours sans titre", locale.Title)
	assert.Empty(t, locale.Description)
}

func TestCreateCourse_TruncatesToLimits(t *testing.T) {
	s, db := newTestStore(t)

	longTitle := strings.Repeat("é", 130)
	longDesc := strings.Repeat("x", 4100)
	id, err := s.CreateCourse(owner, models.LangEN, &longTitle, &longDesc)
	require.NoError(t, err)

	var locale models.CourseLocale
	require.NoError(t, db.First(&locale, "course_id = ?", id).Error)
	assert.Equal(t, strings.Repeat("é", 120), locale.Title)
	assert.Len(t, locale.Description, 4000)
}

func TestCreateCourseLocale_AppendsSupportedLang(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, strPtr("Intro"), nil)
	require.NoError(t, err)

	require.NoError(t, s.CreateCourseLocale(id, owner, models.LangES, "Introducción", "desc"))

	var course models.Course
	require.NoError(t, db.First(&course, "id = ?", id).Error)
	assert.Equal(t, []string{models.LangEN, models.LangES}, []string(course.SupportedLangs))
}

func TestCreateCourseLocale_ConflictLeavesRowUnchanged(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, strPtr("Original title"), strPtr("Original description"))
	require.NoError(t, err)

	err = s.CreateCourseLocale(id, owner, models.LangEN, "Overwrite attempt", "new desc")
	assert.ErrorIs(t, err, store.ErrConflict)

	var locale models.CourseLocale
	require.NoError(t, db.First(&locale, "course_id = ? AND lang = ?", id, models.LangEN).Error)
	assert.Equal(t, "Original title", locale.Title)
	assert.Equal(t, "Original description", locale.Description)
}

func TestCreateCourseLocale_PermissionDenied(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, nil, nil)
	require.NoError(t, err)

	err = s.CreateCourseLocale(id, stranger, models.LangES, "Hola", "")
	assert.ErrorIs(t, err, store.ErrPermissionDenied)

	var count int64
	require.NoError(t, db.Model(&models.CourseLocale{}).Where("course_id = ? AND lang = ?", id, models.LangES).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateCourseLocale_MissingCourse(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.CreateCourseLocale("0e4b4b3a-0000-4000-8000-000000000000", owner, models.LangEN, "Title", "")
	assert.ErrorIs(t, err, store.ErrPermissionDenied)
}

func TestUpdateCourseLocale_NotFound(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, nil, nil)
	require.NoError(t, err)

	err = s.UpdateCourseLocale(id, owner, models.LangFR, strPtr("Titre"), nil)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.CourseLocale{}).Where("course_id = ?", id).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateCourseLocale_PartialKeepsOtherField(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, strPtr("Old title"), strPtr("Keep me intact"))
	require.NoError(t, err)

	require.NoError(t, s.UpdateCourseLocale(id, owner, models.LangEN, strPtr("New title"), nil))

	var locale models.CourseLocale
	require.NoError(t, db.First(&locale, "course_id = ? AND lang = ?", id, models.LangEN).Error)
	assert.Equal(t, "New title", locale.Title)
	assert.Equal(t, "Keep me intact", locale.Description)
}

func TestUpdateCourseLocale_PermissionDeniedEvenWhenLocaleMissing(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, nil, nil)
	require.NoError(t, err)

	// ownership is checked first: the stranger learns nothing about which
	// locales exist
	err = s.UpdateCourseLocale(id, stranger, models.LangFR, strPtr("Titre"), nil)
	assert.ErrorIs(t, err, store.ErrPermissionDenied)

	err = s.UpdateCourseLocale(id, stranger, models.LangEN, strPtr("Title"), nil)
	assert.ErrorIs(t, err, store.ErrPermissionDenied)
}

func TestGetCourse_MissingFlagAndLangs(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, strPtr("Intro"), nil)
	require.NoError(t, err)
	require.NoError(t, s.CreateCourseLocale(id, owner, models.LangES, "Introducción", ""))

	detail, err := s.GetCourse(id, models.LangES)
	require.NoError(t, err)
	assert.False(t, detail.Missing)
	require.NotNil(t, detail.Locale)
	assert.Equal(t, "Introducción", detail.Locale.Title)
	assert.Equal(t, []string{models.LangEN, models.LangES}, detail.Langs)

	detail, err = s.GetCourse(id, models.LangFR)
	require.NoError(t, err)
	assert.True(t, detail.Missing)
	assert.Nil(t, detail.Locale)

	_, err = s.GetCourse("0e4b4b3a-0000-4000-8000-000000000000", models.LangEN)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetCourse_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, strPtr("Exact title"), strPtr("Exact description"))
	require.NoError(t, err)

	detail, err := s.GetCourse(id, models.LangEN)
	require.NoError(t, err)
	require.NotNil(t, detail.Locale)
	assert.Equal(t, "Exact title", detail.Locale.Title)
	assert.Equal(t, "Exact description", detail.Locale.Description)
}

func TestListCourses_OnlyOwnWithMissingFlag(t *testing.T) {
	s, _ := newTestStore(t)

	mine, err := s.CreateCourse(owner, models.LangEN, strPtr("Mine"), nil)
	require.NoError(t, err)
	_, err = s.CreateCourse(stranger, models.LangEN, strPtr("Not mine"), nil)
	require.NoError(t, err)

	summaries, err := s.ListCourses(owner, models.LangEN)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, mine, summaries[0].ID)
	assert.False(t, summaries[0].Missing)
	require.NotNil(t, summaries[0].Title)
	assert.Equal(t, "Mine", *summaries[0].Title)

	summaries, err = s.ListCourses(owner, models.LangFR)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Missing)
	assert.Nil(t, summaries[0].Title)
}

func TestReconcileSupportedLangs_AdditiveRepair(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.CreateCourse(owner, models.LangEN, nil, nil)
	require.NoError(t, err)

	// a second course with no drift must not be counted
	clean, err := s.CreateCourse(owner, models.LangES, nil, nil)
	require.NoError(t, err)

	// simulate drift: a locale row whose lang never made it into the array
	require.NoError(t, db.Create(&models.CourseLocale{CourseID: id, Lang: models.LangFR, Title: "Titre"}).Error)

	repaired, err := s.ReconcileSupportedLangs()
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	var untouched models.Course
	require.NoError(t, db.First(&untouched, "id = ?", clean).Error)
	assert.Equal(t, []string{models.LangES}, []string(untouched.SupportedLangs))

	var course models.Course
	require.NoError(t, db.First(&course, "id = ?", id).Error)
	assert.Equal(t, []string{models.LangEN, models.LangFR}, []string(course.SupportedLangs))

	// second run finds nothing to do
	repaired, err = s.ReconcileSupportedLangs()
	require.NoError(t, err)
	assert.Zero(t, repaired)
}
