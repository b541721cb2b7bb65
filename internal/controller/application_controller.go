package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApplicationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type applicationController struct {
	service service.IApplicationService
}

func NewApplicationController(service service.IApplicationService) IApplicationController {
	return &applicationController{service: service}
}

func (c *applicationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/apps")
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *applicationController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListApplications(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Applications", res))
}

func (c *applicationController) Create(ctx *fiber.Ctx) error {
	var req dto.ApplicationCreateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateApplication(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Application created", res))
}

func (c *applicationController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetApplication(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application", res))
}

func (c *applicationController) Update(ctx *fiber.Ctx) error {
	var req dto.ApplicationUpdateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateApplication(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application updated", res))
}

func (c *applicationController) Delete(ctx *fiber.Ctx) error {
	res, err := c.service.DeleteApplication(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application deleted", res))
}
