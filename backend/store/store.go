// Package store owns the persisted catalog state. Every implementation
// satisfies the same interfaces, so handlers can run against the JSON
// files in production and against in-memory state in tests.
package store

import (
	"errors"

	"coursehub/backend/models"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

// CourseStore is the repository for catalog courses and the admin
// principal. Implementations must be safe for concurrent use.
type CourseStore interface {
	// List returns all courses in storage (insertion) order.
	List() ([]models.Course, error)
	// Get returns the course with the given id or ErrCourseNotFound.
	Get(id int) (models.Course, error)
	// Add assigns the next courseId (max existing + 1, 1 for an empty
	// store), appends the course and persists it.
	Add(course models.Course) (models.Course, error)
	// Admin returns the configured admin credential pair.
	Admin() (models.AdminCredentials, error)
}

// EnrollmentStore is the repository for the enrollment ledger.
// Implementations must be safe for concurrent use.
type EnrollmentStore interface {
	// List returns all enrollments in storage order.
	List() ([]models.Enrollment, error)
	// Create records a new enrollment for the course. At most one
	// enrollment may exist per courseId; a duplicate returns
	// ErrAlreadyEnrolled. The referenced course is NOT required to exist.
	Create(courseID int) (models.Enrollment, error)
	// Delete removes the enrollment with the given id. Deleting an
	// unknown id is a no-op success.
	Delete(enrollmentID int64) error
}
