package controller

import (
	"homedock-be/internal/pkg/serverutils"
	"homedock-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWeatherController interface {
	RegisterRoutes(r fiber.Router)
	GetWeather(ctx *fiber.Ctx) error
	SearchLocations(ctx *fiber.Ctx) error
}

type weatherController struct {
	service service.IWeatherService
}

func NewWeatherController(service service.IWeatherService) IWeatherController {
	return &weatherController{service: service}
}

func (c *weatherController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/weather/v1")
	h.Get("", c.GetWeather)
	h.Get("/locations", c.SearchLocations)
}

func (c *weatherController) GetWeather(ctx *fiber.Ctx) error {
	ip := ctx.Get("x-forwarded-for")
	if ip == "" {
		ip = ctx.Get("x-real-ip")
	}
	if ip == "" {
		ip = ctx.IP()
	}

	res, err := c.service.GetWeather(ctx.Context(), ip)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Weather snapshot", res))
}

func (c *weatherController) SearchLocations(ctx *fiber.Ctx) error {
	query := ctx.Query("query")

	res, err := c.service.SearchLocations(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Location matches", res))
}
