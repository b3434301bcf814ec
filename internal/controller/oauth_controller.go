package controller

import (
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service service.IOAuthService
}

func NewOAuthController(service service.IOAuthService) IOAuthController {
	return &oauthController{service: service}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/google")
	h.Get("/login", c.Login)
	h.Get("/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	res, err := c.service.GetLoginURL()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get login url", res))
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	res, err := c.service.HandleCallback(ctx.UserContext(), ctx.Query("state"), ctx.Query("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}
