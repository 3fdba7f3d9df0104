// file: internals/features/transactions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/features/transactions/controller"
	"tutorku_backend/internals/upstream"
)

func TransactionAdminRoutes(r fiber.Router, api *upstream.Client) {
	ctl := controller.NewTransactionAdminController(api)

	tx := r.Group("/transactions")
	tx.Get("/", ctl.List)
	tx.Get("/recap", ctl.Recap)
}
