package models

// Enrollment — одна запись журнала записей на курсы.
type Enrollment struct {
	EnrollmentID int64  `json:"enrollmentId"`
	CourseID     int    `json:"courseId"`
	EnrolledAt   string `json:"enrolledAt"` // RFC 3339
}

// EnrolledCourse is the read-side join of an enrollment with its course.
// Course is nil (serialized as null) when the referenced course no longer
// exists in the catalog.
type EnrolledCourse struct {
	EnrollmentID int64   `json:"enrollmentId"`
	CourseID     int     `json:"courseId"`
	EnrolledAt   string  `json:"enrolledAt"`
	Course       *Course `json:"course"`
}
