package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrgController interface {
	RegisterRoutes(r fiber.Router)
	Self(ctx *fiber.Ctx) error
	GetContext(ctx *fiber.Ctx) error
	ClearContext(ctx *fiber.Ctx) error
}

type orgController struct {
	service service.ISessionService
}

func NewOrgController(service service.ISessionService) IOrgController {
	return &orgController{service: service}
}

func (c *orgController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/org")
	h.Post("/self", c.Self)
	h.Get("/context", c.GetContext)
	h.Delete("/context", c.ClearContext)
}

// Self validates credentials against /self and resolves the working org.
// The body is optional; an empty body uses the default host.
func (c *orgController) Self(ctx *fiber.Ctx) error {
	var req dto.SelfRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Handshake(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session context resolved", res))
}

func (c *orgController) GetContext(ctx *fiber.Ctx) error {
	res, err := c.service.GetContext(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session context", res))
}

func (c *orgController) ClearContext(ctx *fiber.Ctx) error {
	if err := c.service.ClearContext(ctx.UserContext()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session context cleared", nil))
}
