package controller

import (
	"homedock-be/internal/dto"
	"homedock-be/internal/pkg/serverutils"
	"homedock-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetPublic(ctx *fiber.Ctx) error
	GetAdmin(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	GetDock(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Get("", c.GetPublic)
	h.Get("/dock", c.GetDock)
	h.Get("/admin", serverutils.JwtMiddleware, c.GetAdmin)
	h.Put("/admin", serverutils.JwtMiddleware, c.Update)
}

func (c *dashboardController) GetPublic(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublicDashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Public dashboard", res))
}

func (c *dashboardController) GetAdmin(ctx *fiber.Ctx) error {
	res, err := c.service.GetAdminDashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Admin dashboard", res))
}

func (c *dashboardController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateDashboardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateDashboard(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard updated", res))
}

func (c *dashboardController) GetDock(ctx *fiber.Ctx) error {
	width := ctx.QueryFloat("width", 0)

	res, err := c.service.GetDock(ctx.Context(), width)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dock layout", res))
}
