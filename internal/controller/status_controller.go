package controller

import (
	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/serverutils"
	"mist-provisioning-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type statusController struct {
	store contract.ContextStore
}

func NewStatusController(store contract.ContextStore) IStatusController {
	return &statusController{store: store}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/status", c.Status)
}

func (c *statusController) Root(ctx *fiber.Ctx) error {
	return ctx.Redirect("/status", fiber.StatusFound)
}

// Status reports liveness. The service stays up when the store is down, so
// an unreachable store degrades the status instead of failing the request.
func (c *statusController) Status(ctx *fiber.Ctx) error {
	res := dto.StatusResponse{Status: "ok", Store: "ok"}
	if err := c.store.Ping(ctx.UserContext()); err != nil {
		res.Status = "degraded"
		res.Store = "unavailable"
	}
	return ctx.JSON(serverutils.SuccessResponse("Service status", res))
}
