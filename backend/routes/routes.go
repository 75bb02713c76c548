package routes

import (
	"coursehub/backend/controllers"
	"coursehub/backend/middleware"
	"coursehub/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, courses store.CourseStore, enrollments store.EnrollmentStore) {
	// Admin session routes
	authController := controllers.NewAuthController(courses)
	app.Post("/api/admin/login", authController.Login)
	app.Post("/api/admin/logout", authController.Logout)
	app.Get("/api/admin/check", authController.Check)

	// Middleware
	adminRequired := middleware.AdminRequired()

	// Catalog routes
	coursesController := controllers.NewCoursesController(courses)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Post("/api/courses", adminRequired, coursesController.CreateCourse)
	app.Get("/api/courses/:id", coursesController.GetCourse)

	// Enrollment routes
	enrollController := controllers.NewEnrollController(courses, enrollments)
	app.Get("/api/enroll", enrollController.GetEnrolledCourses)
	app.Post("/api/enroll", enrollController.Enroll)
	app.Delete("/api/enroll", enrollController.Unenroll)
}
