package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHubProfileController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type hubProfileController struct {
	service service.IHubProfileService
}

func NewHubProfileController(service service.IHubProfileService) IHubProfileController {
	return &hubProfileController{service: service}
}

func (c *hubProfileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hub-profiles")
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *hubProfileController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListHubProfiles(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hub profiles", res))
}

func (c *hubProfileController) Create(ctx *fiber.Ctx) error {
	var req dto.HubProfileCreateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateHubProfile(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Hub profile created", res))
}

func (c *hubProfileController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetHubProfile(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hub profile", res))
}

func (c *hubProfileController) Update(ctx *fiber.Ctx) error {
	var req dto.HubProfileUpdateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateHubProfile(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hub profile updated", res))
}

func (c *hubProfileController) Delete(ctx *fiber.Ctx) error {
	res, err := c.service.DeleteHubProfile(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hub profile deleted", res))
}
