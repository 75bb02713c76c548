package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"coursehub/backend/models"
)

// enrollmentsFile — формат data/enrollments.json.
type enrollmentsFile struct {
	Enrollments []models.Enrollment `json:"enrollments"`
}

// FileEnrollmentStore keeps the enrollment ledger in its own JSON file.
// A missing file reads as an empty ledger and is created on the first
// write, so a fresh deployment needs no seed file.
type FileEnrollmentStore struct {
	mu   sync.Mutex
	path string

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func NewFileEnrollmentStore(path string) *FileEnrollmentStore {
	return &FileEnrollmentStore{path: path, now: time.Now}
}

func (s *FileEnrollmentStore) load() (enrollmentsFile, error) {
	var file enrollmentsFile
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return file, nil
	}
	if err != nil {
		return file, fmt.Errorf("read enrollments file: %w", err)
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse enrollments file: %w", err)
	}
	return file, nil
}

func (s *FileEnrollmentStore) save(file enrollmentsFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode enrollments file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write enrollments file: %w", err)
	}
	return nil
}

func (s *FileEnrollmentStore) List() ([]models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Enrollments, nil
}

func (s *FileEnrollmentStore) Create(courseID int) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return models.Enrollment{}, err
	}

	for _, existing := range file.Enrollments {
		if existing.CourseID == courseID {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
	}

	enrollment := models.Enrollment{
		EnrollmentID: nextEnrollmentID(file.Enrollments, s.now()),
		CourseID:     courseID,
		EnrolledAt:   s.now().UTC().Format(time.RFC3339),
	}

	file.Enrollments = append(file.Enrollments, enrollment)
	if err := s.save(file); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

func (s *FileEnrollmentStore) Delete(enrollmentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	kept := file.Enrollments[:0]
	removed := false
	for _, existing := range file.Enrollments {
		if existing.EnrollmentID == enrollmentID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		// Удаление несуществующей записи — тоже успех.
		return nil
	}

	file.Enrollments = kept
	return s.save(file)
}

// nextEnrollmentID derives an id from the current time in milliseconds
// and bumps it past every existing id, so rapid successive enrollments
// within the same millisecond still get unique ids.
func nextEnrollmentID(existing []models.Enrollment, now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range existing {
		if id <= e.EnrollmentID {
			id = e.EnrollmentID + 1
		}
	}
	return id
}
