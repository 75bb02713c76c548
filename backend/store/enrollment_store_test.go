package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollmentsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "enrollments.json")
}

func TestMissingLedgerReadsEmpty(t *testing.T) {
	s := NewFileEnrollmentStore(enrollmentsPath(t))

	enrollments, err := s.List()
	assert.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestCreateAndList(t *testing.T) {
	s := NewFileEnrollmentStore(enrollmentsPath(t))

	created, err := s.Create(1)
	require.NoError(t, err)
	assert.Equal(t, 1, created.CourseID)
	assert.NotZero(t, created.EnrollmentID)

	// enrolledAt — валидный RFC 3339.
	_, err = time.Parse(time.RFC3339, created.EnrolledAt)
	assert.NoError(t, err)

	enrollments, err := s.List()
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, created, enrollments[0])
}

func TestDuplicateEnrollmentRejected(t *testing.T) {
	s := NewFileEnrollmentStore(enrollmentsPath(t))

	_, err := s.Create(1)
	require.NoError(t, err)

	_, err = s.Create(1)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// В журнале по-прежнему одна запись для курса 1.
	enrollments, err := s.List()
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestRapidCreatesGetUniqueIDs(t *testing.T) {
	s := NewFileEnrollmentStore(enrollmentsPath(t))
	// Фиксированное время: все записи приходят в одну миллисекунду.
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	seen := map[int64]bool{}
	for courseID := 1; courseID <= 5; courseID++ {
		created, err := s.Create(courseID)
		require.NoError(t, err)
		assert.False(t, seen[created.EnrollmentID])
		seen[created.EnrollmentID] = true
	}
}

func TestDeleteRemovesEnrollment(t *testing.T) {
	s := NewFileEnrollmentStore(enrollmentsPath(t))

	created, err := s.Create(1)
	require.NoError(t, err)

	assert.NoError(t, s.Delete(created.EnrollmentID))

	enrollments, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	s := NewFileEnrollmentStore(enrollmentsPath(t))

	_, err := s.Create(1)
	require.NoError(t, err)

	assert.NoError(t, s.Delete(999999))

	enrollments, err := s.List()
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestLedgerFileIsCreatedOnFirstWrite(t *testing.T) {
	path := enrollmentsPath(t)
	s := NewFileEnrollmentStore(path)

	_, err := s.Create(1)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
