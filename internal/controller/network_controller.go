package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INetworkController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type networkController struct {
	service service.INetworkService
}

func NewNetworkController(service service.INetworkService) INetworkController {
	return &networkController{service: service}
}

func (c *networkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/networks")
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *networkController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListNetworks(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Networks", res))
}

func (c *networkController) Create(ctx *fiber.Ctx) error {
	var req dto.NetworkCreateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateNetwork(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Network created", res))
}

func (c *networkController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetNetwork(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Network", res))
}

func (c *networkController) Update(ctx *fiber.Ctx) error {
	var req dto.NetworkUpdateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateNetwork(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Network updated", res))
}

func (c *networkController) Delete(ctx *fiber.Ctx) error {
	res, err := c.service.DeleteNetwork(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Network deleted", res))
}
