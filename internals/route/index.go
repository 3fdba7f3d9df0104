// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	routeDetails "tutorku_backend/internals/route/details"
	"tutorku_backend/internals/upstream"
)

func SetupRoutes(app *fiber.App, api *upstream.Client, maxPages int) {
	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Transaction routes...")
	routeDetails.TransactionAdminRoutes(admin, api)

	log.Println("[INFO] Mounting Enrollment routes...")
	routeDetails.EnrollmentAdminRoutes(admin, api, maxPages)
}
