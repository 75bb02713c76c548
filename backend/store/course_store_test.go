package store

import (
	"os"
	"path/filepath"
	"testing"

	"coursehub/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCoursesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const emptyCatalog = `{
  "admin": {"username": "admin", "password": "admin123"},
  "courses": []
}`

const seededCatalog = `{
  "admin": {"username": "admin", "password": "admin123"},
  "courses": [
    {"courseId": 3, "title": "First", "instructor": "A", "description": "d", "level": "Beginner", "duration": "1h", "thumbnail": "t", "prerequisites": [], "syllabus": []},
    {"courseId": 7, "title": "Second", "instructor": "B", "description": "d", "level": "Advanced", "duration": "2h", "thumbnail": "t", "prerequisites": [], "syllabus": []}
  ]
}`

func TestAddToEmptyStoreSeedsIDOne(t *testing.T) {
	s := NewFileCourseStore(writeCoursesFile(t, emptyCatalog))

	created, err := s.Add(models.Course{
		Title:       "A",
		Instructor:  "B",
		Description: "C",
		Level:       "Beginner",
		Duration:    "1h",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.CourseID)
}

func TestAddAssignsMaxPlusOne(t *testing.T) {
	s := NewFileCourseStore(writeCoursesFile(t, seededCatalog))

	created, err := s.Add(models.Course{Title: "Third"})
	assert.NoError(t, err)
	assert.Equal(t, 8, created.CourseID)
}

func TestAddThenGetRoundTrip(t *testing.T) {
	s := NewFileCourseStore(writeCoursesFile(t, emptyCatalog))

	course := models.Course{
		Title:         "Round Trip",
		Instructor:    "Someone",
		Description:   "desc",
		Level:         "Intermediate",
		Duration:      "5h",
		Thumbnail:     "https://placehold.co/600x400/1e293b/f8fafc?text=Round+Trip",
		Category:      "Testing",
		Rating:        4.2,
		Students:      100,
		Prerequisites: []string{"none"},
		Syllabus:      []string{"a", "b"},
		Language:      "English",
		Certificate:   true,
		LastUpdated:   "2026-08-28",
	}

	created, err := s.Add(course)
	require.NoError(t, err)

	got, err := s.Get(created.CourseID)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := NewFileCourseStore(writeCoursesFile(t, seededCatalog))

	courses, err := s.List()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "First", courses[0].Title)
	assert.Equal(t, "Second", courses[1].Title)
}

func TestGetUnknownCourse(t *testing.T) {
	s := NewFileCourseStore(writeCoursesFile(t, seededCatalog))

	_, err := s.Get(42)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestAdminCredentials(t *testing.T) {
	s := NewFileCourseStore(writeCoursesFile(t, emptyCatalog))

	admin, err := s.Admin()
	assert.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "admin123", admin.Password)
}

func TestMissingCoursesFileIsAnError(t *testing.T) {
	s := NewFileCourseStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := s.List()
	assert.Error(t, err)
}

func TestAddPersistsAcrossStoreInstances(t *testing.T) {
	path := writeCoursesFile(t, emptyCatalog)

	created, err := NewFileCourseStore(path).Add(models.Course{Title: "Durable"})
	require.NoError(t, err)

	// Новый экземпляр читает тот же файл.
	got, err := NewFileCourseStore(path).Get(created.CourseID)
	assert.NoError(t, err)
	assert.Equal(t, "Durable", got.Title)
}
