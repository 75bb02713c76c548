package controllers

import (
	"errors"
	"strings"
	"time"

	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Courses store.CourseStore
}

func NewCoursesController(courses store.CourseStore) *CoursesController {
	return &CoursesController{Courses: courses}
}

// [+] GetCourses godoc
// @Summary List all courses
// @Description Returns the full catalog in storage order
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} map[string]interface{}
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	courses, err := cc.Courses.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load courses",
		})
	}

	if courses == nil {
		courses = []models.Course{}
	}
	return c.JSON(courses)
}

// [+] GetCourse godoc
// @Summary Get one course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	course, err := cc.Courses.Get(courseID)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch course",
		})
	}

	return c.JSON(course)
}

// [+] CreateCourse godoc
// @Summary Add a new course (admin only)
// @Description Assigns the next courseId and derives the thumbnail from the title
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.Course true "Course data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	type CourseInput struct {
		Title         string   `json:"title"`
		Instructor    string   `json:"instructor"`
		Description   string   `json:"description"`
		Level         string   `json:"level"`
		Duration      string   `json:"duration"`
		Category      string   `json:"category"`
		Rating        float64  `json:"rating"`
		Students      int      `json:"students"`
		Prerequisites []string `json:"prerequisites"`
		Syllabus      []string `json:"syllabus"`
		Language      string   `json:"language"`
		Certificate   bool     `json:"certificate"`
		LastUpdated   string   `json:"lastUpdated"`
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Обязательные поля — только проверка наличия, без прочей валидации.
	required := []struct{ name, value string }{
		{"title", input.Title},
		{"instructor", input.Instructor},
		{"description", input.Description},
		{"level", input.Level},
		{"duration", input.Duration},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required field: " + field.name,
			})
		}
	}

	if input.LastUpdated == "" {
		input.LastUpdated = time.Now().Format("2006-01-02")
	}

	// В файле списки хранятся как [], а не null.
	if input.Prerequisites == nil {
		input.Prerequisites = []string{}
	}
	if input.Syllabus == nil {
		input.Syllabus = []string{}
	}

	course := models.Course{
		Title:         input.Title,
		Instructor:    input.Instructor,
		Description:   input.Description,
		Level:         input.Level,
		Duration:      input.Duration,
		Thumbnail:     utils.ThumbnailURL(input.Title),
		Category:      input.Category,
		Rating:        input.Rating,
		Students:      input.Students,
		Prerequisites: input.Prerequisites,
		Syllabus:      input.Syllabus,
		Language:      input.Language,
		Certificate:   input.Certificate,
		LastUpdated:   input.LastUpdated,
	}

	created, err := cc.Courses.Add(course)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save course",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"course":  created,
		"message": "Course added successfully",
	})
}
