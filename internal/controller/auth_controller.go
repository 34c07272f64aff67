package controller

import (
	"time"

	"homedock-be/internal/config"
	"homedock-be/internal/constant"
	"homedock-be/internal/dto"
	"homedock-be/internal/pkg/serverutils"
	"homedock-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	authCfg config.AuthConfig
}

func NewAuthController(service service.IAuthService, authCfg config.AuthConfig) IAuthController {
	return &authController{service: service, authCfg: authCfg}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/me", serverutils.JwtMiddleware, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	ctx.Cookie(c.sessionCookie(res.AccessToken, time.Now().Add(12*time.Hour)))

	return ctx.JSON(serverutils.SuccessResponse("Login success", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(c.sessionCookie("", time.Now().Add(-time.Hour)))
	return ctx.JSON(serverutils.SuccessResponse[any]("Logout success", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User no longer exists")
	}

	return ctx.JSON(serverutils.SuccessResponse("Current user", res))
}

func (c *authController) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     constant.AuthCookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   c.authCfg.CookieSecure,
		SameSite: c.authCfg.CookieSameSite,
		Domain:   c.authCfg.CookieDomain,
		Path:     "/",
	}
}
