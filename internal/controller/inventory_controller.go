package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInventoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetDevice(ctx *fiber.Ctx) error
	Claim(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
	Unassign(ctx *fiber.Ctx) error
}

type inventoryController struct {
	service service.IInventoryService
}

func NewInventoryController(service service.IInventoryService) IInventoryController {
	return &inventoryController{service: service}
}

func (c *inventoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/inventory")
	h.Get("/", c.List)
	h.Post("/claim", c.Claim)
	h.Post("/assign", c.Assign)
	h.Post("/unassign", c.Unassign)
	h.Get("/:serial", c.GetDevice)
}

func (c *inventoryController) List(ctx *fiber.Ctx) error {
	q := dto.InventoryQuery{Limit: 100, Page: 1}
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.service.ListInventory(ctx.UserContext(), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Inventory", res))
}

func (c *inventoryController) GetDevice(ctx *fiber.Ctx) error {
	res, err := c.service.GetDevice(ctx.UserContext(), ctx.Params("serial"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Device", res))
}

func (c *inventoryController) Claim(ctx *fiber.Ctx) error {
	var req dto.ClaimDevicesRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ClaimDevices(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Devices claimed", res))
}

func (c *inventoryController) Assign(ctx *fiber.Ctx) error {
	var req dto.DeviceAssignmentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AssignDevices(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Devices assigned", res))
}

func (c *inventoryController) Unassign(ctx *fiber.Ctx) error {
	var req dto.UnassignDevicesRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UnassignDevices(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Devices unassigned", res))
}
