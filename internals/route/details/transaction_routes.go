// file: internals/route/details/transaction_routes.go
package details

import (
	TransactionRoute "tutorku_backend/internals/features/transactions/route"

	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/upstream"
)

func TransactionAdminRoutes(r fiber.Router, api *upstream.Client) {
	TransactionRoute.TransactionAdminRoutes(r, api)
}
