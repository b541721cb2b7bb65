package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INmsController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type nmsController struct {
	service service.INmsService
}

func NewNmsController(service service.INmsService) INmsController {
	return &nmsController{service: service}
}

func (c *nmsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/nms")
	h.Post("/", c.Save)
	h.Get("/", c.Get)
	h.Delete("/", c.Delete)
}

func (c *nmsController) Save(ctx *fiber.Ctx) error {
	var req dto.NmsProfile
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SaveProfile(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("NMS profile saved", res))
}

func (c *nmsController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("NMS profile", res))
}

func (c *nmsController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.DeleteProfile(ctx.UserContext()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("NMS profile cleared", nil))
}
