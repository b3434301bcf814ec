package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetGeneral(ctx *fiber.Ctx) error
	UpdateGeneral(ctx *fiber.Ctx) error
	GetAi(ctx *fiber.Ctx) error
	UpdateAi(ctx *fiber.Ctx) error
	GetAdvanced(ctx *fiber.Ctx) error
	UpdateAdvanced(ctx *fiber.Ctx) error
	Backup(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
}

type settingsController struct {
	service service.ISettingsService
	auth    fiber.Handler
}

func NewSettingsController(service service.ISettingsService, auth fiber.Handler) ISettingsController {
	return &settingsController{service: service, auth: auth}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings")
	h.Use(c.auth)
	admin := serverutils.RequireRoles(adminOnly...)
	h.Get("/general", c.GetGeneral)
	h.Put("/general", c.UpdateGeneral)
	h.Get("/ai", c.GetAi)
	h.Put("/ai", c.UpdateAi)
	h.Get("/advanced", admin, c.GetAdvanced)
	h.Put("/advanced", admin, c.UpdateAdvanced)
	h.Post("/backup", admin, c.Backup)
	h.Post("/restore", admin, c.Restore)
}

func (c *settingsController) GetGeneral(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetGeneral(ctx.UserContext(), actor.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get general settings", res))
}

func (c *settingsController) UpdateGeneral(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateGeneralSettingsRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateGeneral(ctx.UserContext(), actor.ID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("General settings updated", res))
}

func (c *settingsController) GetAi(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAi(ctx.UserContext(), actor.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get AI settings", res))
}

func (c *settingsController) UpdateAi(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateAiSettingsRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateAi(ctx.UserContext(), actor.ID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("AI settings updated", res))
}

func (c *settingsController) GetAdvanced(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAdvanced(ctx.UserContext(), actor)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get advanced settings", res))
}

func (c *settingsController) UpdateAdvanced(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateAdvancedSettingsRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateAdvanced(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Advanced settings updated", res))
}

func (c *settingsController) Backup(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Backup(ctx.UserContext(), actor)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *settingsController) Restore(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.RestoreRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Restore(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
