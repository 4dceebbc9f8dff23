package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "courseloc/controllers/course"
	"courseloc/middleware"
	validators "courseloc/validators/course"
)

// SetupCourseRoutes wires every course and module endpoint. Reads are
// public; every mutation goes through the acting-user middleware.
func SetupCourseRoutes(app *fiber.App, h *controllers.Handler) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", middleware.RequireAuthor, validators.LangQuery(), h.GetAllCourses)
	courseGroup.Post("/", middleware.RequireAuthor, validators.CreateCourse(), h.CreateCourse)
	courseGroup.Get("/:id", validators.CourseID(), validators.LangQuery(), h.GetCourseDetails)
	courseGroup.Get("/:id/outline", validators.CourseID(), validators.LangQuery(), h.GetOutline)

	courseGroup.Post("/:id/locale", middleware.RequireAuthor, validators.CourseID(), validators.CreateCourseLocale(), h.CreateCourseLocale)
	courseGroup.Patch("/:id/locale", middleware.RequireAuthor, validators.CourseID(), validators.UpdateCourseLocale(), h.UpdateCourseLocale)

	courseGroup.Post("/:id/modules", middleware.RequireAuthor, validators.CourseID(), h.CreateModule)

	moduleGroup := app.Group("/modules")

	moduleGroup.Post("/:id/locale", middleware.RequireAuthor, validators.ModuleID(), validators.CreateModuleLocale(), h.CreateModuleLocale)
	moduleGroup.Patch("/:id/locale", middleware.RequireAuthor, validators.ModuleID(), validators.UpdateModuleLocale(), h.UpdateModuleLocale)
}
