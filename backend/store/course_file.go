package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"coursehub/backend/models"
)

// coursesFile — формат data/courses.json: учётная запись администратора
// плюс весь каталог в одном файле.
type coursesFile struct {
	Admin   models.AdminCredentials `json:"admin"`
	Courses []models.Course         `json:"courses"`
}

// FileCourseStore keeps the catalog in a single JSON file. Every
// operation reads the whole file, mutates in memory and rewrites it;
// the mutex serializes the read-modify-write cycle so concurrent
// requests cannot lose updates.
type FileCourseStore struct {
	mu   sync.Mutex
	path string
}

func NewFileCourseStore(path string) *FileCourseStore {
	return &FileCourseStore{path: path}
}

func (s *FileCourseStore) load() (coursesFile, error) {
	var file coursesFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		return file, fmt.Errorf("read courses file: %w", err)
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse courses file: %w", err)
	}
	return file, nil
}

func (s *FileCourseStore) save(file coursesFile) error {
	// Отступ в два пробела — как в исходных data-файлах.
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode courses file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write courses file: %w", err)
	}
	return nil
}

func (s *FileCourseStore) List() ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Courses, nil
}

func (s *FileCourseStore) Get(id int) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return models.Course{}, err
	}
	for _, course := range file.Courses {
		if course.CourseID == id {
			return course, nil
		}
	}
	return models.Course{}, ErrCourseNotFound
}

func (s *FileCourseStore) Add(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return models.Course{}, err
	}

	// max(существующие id, 0) + 1 — пустой каталог начинается с 1.
	maxID := 0
	for _, existing := range file.Courses {
		if existing.CourseID > maxID {
			maxID = existing.CourseID
		}
	}
	course.CourseID = maxID + 1

	file.Courses = append(file.Courses, course)
	if err := s.save(file); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *FileCourseStore) Admin() (models.AdminCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return models.AdminCredentials{}, err
	}
	return file.Admin, nil
}
