// file: internals/features/classsessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/features/classsessions/controller"
	"tutorku_backend/internals/upstream"
)

func EnrollmentAdminRoutes(r fiber.Router, api *upstream.Client, maxPages int) {
	ctl := controller.NewEnrollmentAdminController(api, maxPages)

	enr := r.Group("/enrollments")
	enr.Get("/:id/sessions", ctl.Sessions)
	enr.Get("/:id/progress", ctl.Progress)
}
