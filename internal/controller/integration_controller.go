package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIntegrationController interface {
	RegisterRoutes(r fiber.Router)
	ManageApiKey(ctx *fiber.Ctx) error
	ApiUsage(ctx *fiber.Ctx) error
}

type integrationController struct {
	service service.IIntegrationService
	auth    fiber.Handler
}

func NewIntegrationController(service service.IIntegrationService, auth fiber.Handler) IIntegrationController {
	return &integrationController{service: service, auth: auth}
}

func (c *integrationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/integrations")
	h.Use(c.auth)
	h.Post("/api-keys", c.ManageApiKey)
	h.Get("/api-usage", c.ApiUsage)
}

func (c *integrationController) ManageApiKey(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.ManageApiKeyRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ManageApiKey(ctx.UserContext(), actor.ID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *integrationController) ApiUsage(ctx *fiber.Ctx) error {
	res, err := c.service.ApiUsage(ctx.UserContext(), ctx.Query("service"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get API usage", res))
}
