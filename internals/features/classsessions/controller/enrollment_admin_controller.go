// file: internals/features/classsessions/controller/enrollment_admin_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/features/classsessions/service"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/upstream"
)

type EnrollmentAdminController struct {
	service *service.ClassSessionService
}

func NewEnrollmentAdminController(api *upstream.Client, maxPages int) *EnrollmentAdminController {
	return &EnrollmentAdminController{service: service.NewClassSessionService(api, maxPages)}
}

// GET /enrollments/:id/sessions
func (ctl *EnrollmentAdminController) Sessions(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollment id wajib diisi")
	}

	sessions, err := ctl.service.EnrollmentSessions(helper.RequestCtx(c), id)
	if err != nil {
		return helper.FromUpstreamError(c, err)
	}
	return helper.JsonOK(c, "daftar sesi", sessions)
}

// GET /enrollments/:id/progress
func (ctl *EnrollmentAdminController) Progress(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollment id wajib diisi")
	}

	progress, err := ctl.service.Progress(helper.RequestCtx(c), id)
	if err != nil {
		return helper.FromUpstreamError(c, err)
	}
	return helper.JsonOK(c, "progres pendaftaran", progress)
}
