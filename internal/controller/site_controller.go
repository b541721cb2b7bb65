package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISiteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type siteController struct {
	service service.ISiteService
}

func NewSiteController(service service.ISiteService) ISiteController {
	return &siteController{service: service}
}

func (c *siteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sites")
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *siteController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListSites(ctx.UserContext(), ctx.Query("site_name"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sites", res))
}

func (c *siteController) Create(ctx *fiber.Ctx) error {
	var req dto.SiteCreateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateSite(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Site created", res))
}

func (c *siteController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetSite(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Site", res))
}

func (c *siteController) Update(ctx *fiber.Ctx) error {
	var req dto.SiteUpdateRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateSite(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Site updated", res))
}

func (c *siteController) Delete(ctx *fiber.Ctx) error {
	res, err := c.service.DeleteSite(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Site deleted", res))
}

// parseBody decodes and validates a JSON request body.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(out)
}
