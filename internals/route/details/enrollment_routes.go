// file: internals/route/details/enrollment_routes.go
package details

import (
	ClassSessionRoute "tutorku_backend/internals/features/classsessions/route"

	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/middlewares"
	"tutorku_backend/internals/upstream"
)

func EnrollmentAdminRoutes(r fiber.Router, api *upstream.Client, maxPages int) {
	// endpoint progres/sesi menarik seluruh halaman upstream; limiter khusus
	grp := r.Group("", middlewares.AggregationRateLimiter())
	ClassSessionRoute.EnrollmentAdminRoutes(grp, api, maxPages)
}
