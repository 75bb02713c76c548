package controllers

import (
	"errors"

	"coursehub/backend/models"
	"coursehub/backend/store"

	"github.com/gofiber/fiber/v2"
)

type EnrollController struct {
	Courses     store.CourseStore
	Enrollments store.EnrollmentStore
}

func NewEnrollController(courses store.CourseStore, enrollments store.EnrollmentStore) *EnrollController {
	return &EnrollController{Courses: courses, Enrollments: enrollments}
}

// [+] GetEnrolledCourses godoc
// @Summary List enrollments joined with course details
// @Description Each ledger entry carries its course, or null if the course no longer exists
// @Tags enroll
// @Produce json
// @Success 200 {array} models.EnrolledCourse
// @Failure 500 {object} map[string]interface{}
// @Router /enroll [get]
func (ec *EnrollController) GetEnrolledCourses(c *fiber.Ctx) error {
	enrollments, err := ec.Enrollments.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load enrolled courses",
		})
	}

	courses, err := ec.Courses.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load enrolled courses",
		})
	}

	byID := make(map[int]models.Course, len(courses))
	for _, course := range courses {
		byID[course.CourseID] = course
	}

	result := make([]models.EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		entry := models.EnrolledCourse{
			EnrollmentID: enrollment.EnrollmentID,
			CourseID:     enrollment.CourseID,
			EnrolledAt:   enrollment.EnrolledAt,
		}
		// Запись может ссылаться на удалённый курс — тогда course: null.
		if course, ok := byID[enrollment.CourseID]; ok {
			entry.Course = &course
		}
		result = append(result, entry)
	}

	return c.JSON(result)
}

// [+] Enroll godoc
// @Summary Enroll in a course
// @Tags enroll
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "courseId"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /enroll [post]
func (ec *EnrollController) Enroll(c *fiber.Ctx) error {
	type EnrollInput struct {
		CourseID int `json:"courseId"`
	}

	var input EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.CourseID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Course ID is required",
		})
	}

	enrollment, err := ec.Enrollments.Create(input.CourseID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyEnrolled) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Already enrolled in this course",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to enroll in course",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Successfully enrolled!",
		"enrollment": enrollment,
	})
}

// [+] Unenroll godoc
// @Summary Cancel an enrollment
// @Description Deleting an unknown enrollmentId is a no-op success
// @Tags enroll
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "enrollmentId"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /enroll [delete]
func (ec *EnrollController) Unenroll(c *fiber.Ctx) error {
	type UnenrollInput struct {
		EnrollmentID int64 `json:"enrollmentId"`
	}

	var input UnenrollInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.EnrollmentID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Enrollment ID is required",
		})
	}

	if err := ec.Enrollments.Delete(input.EnrollmentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to unenroll from course",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Successfully unenrolled from course",
	})
}
