// file: internals/features/transactions/controller/transaction_admin_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/features/transactions/dto"
	"tutorku_backend/internals/features/transactions/service"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/upstream"
)

var validate = validator.New()

type TransactionAdminController struct {
	service *service.TransactionService
	seq     upstream.Seq // guard response basi untuk layar daftar live
}

func NewTransactionAdminController(api *upstream.Client) *TransactionAdminController {
	return &TransactionAdminController{service: service.NewTransactionService(api)}
}

// GET /transactions
func (ctl *TransactionAdminController) List(c *fiber.Ctx) error {
	tok := ctl.seq.Next()

	var f dto.TransactionFilter
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	f.Normalize()
	if err := validate.Struct(&f); err != nil {
		return helper.JsonValidationError(c, err)
	}

	page, err := ctl.service.List(helper.RequestCtx(c), f)
	if err != nil {
		return helper.FromUpstreamError(c, err)
	}

	// Sudah ada request filter yang lebih baru dari layar yang sama:
	// response ini basi, buang diam-diam.
	if !ctl.seq.Latest(tok) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return helper.JsonList(c, "daftar transaksi", page.Items, helper.PaginationOf(page))
}

// GET /transactions/recap
func (ctl *TransactionAdminController) Recap(c *fiber.Ctx) error {
	scope := map[string]string{}
	if y := strings.TrimSpace(c.Query("year")); y != "" {
		scope["year"] = y
	}
	if m := strings.TrimSpace(c.Query("month")); m != "" {
		scope["month"] = m
	}

	recap, err := ctl.service.Recap(helper.RequestCtx(c), scope)
	if err != nil {
		return helper.FromUpstreamError(c, err)
	}
	return helper.JsonOK(c, "rekap transaksi", recap)
}
