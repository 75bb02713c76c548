package store

import (
	"sync"
	"time"

	"coursehub/backend/models"
)

// MemCourseStore — каталог в памяти, для тестов без файлового I/O.
// Семантика полностью совпадает с FileCourseStore.
type MemCourseStore struct {
	mu      sync.Mutex
	admin   models.AdminCredentials
	courses []models.Course
}

func NewMemCourseStore(admin models.AdminCredentials, courses ...models.Course) *MemCourseStore {
	return &MemCourseStore{admin: admin, courses: courses}
}

func (s *MemCourseStore) List() ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *MemCourseStore) Get(id int) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, course := range s.courses {
		if course.CourseID == id {
			return course, nil
		}
	}
	return models.Course{}, ErrCourseNotFound
}

func (s *MemCourseStore) Add(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, existing := range s.courses {
		if existing.CourseID > maxID {
			maxID = existing.CourseID
		}
	}
	course.CourseID = maxID + 1
	s.courses = append(s.courses, course)
	return course, nil
}

func (s *MemCourseStore) Admin() (models.AdminCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin, nil
}

// MemEnrollmentStore — журнал записей в памяти, для тестов.
type MemEnrollmentStore struct {
	mu          sync.Mutex
	enrollments []models.Enrollment
}

func NewMemEnrollmentStore() *MemEnrollmentStore {
	return &MemEnrollmentStore{}
}

func (s *MemEnrollmentStore) List() ([]models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Enrollment, len(s.enrollments))
	copy(out, s.enrollments)
	return out, nil
}

func (s *MemEnrollmentStore) Create(courseID int) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.enrollments {
		if existing.CourseID == courseID {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
	}
	now := time.Now()
	enrollment := models.Enrollment{
		EnrollmentID: nextEnrollmentID(s.enrollments, now),
		CourseID:     courseID,
		EnrolledAt:   now.UTC().Format(time.RFC3339),
	}
	s.enrollments = append(s.enrollments, enrollment)
	return enrollment, nil
}

func (s *MemEnrollmentStore) Delete(enrollmentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.enrollments[:0]
	for _, existing := range s.enrollments {
		if existing.EnrollmentID != enrollmentID {
			kept = append(kept, existing)
		}
	}
	s.enrollments = kept
	return nil
}
