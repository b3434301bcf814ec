package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IThemeController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetByBrand(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type themeController struct {
	service service.IThemeService
	auth    fiber.Handler
}

func NewThemeController(service service.IThemeService, auth fiber.Handler) IThemeController {
	return &themeController{service: service, auth: auth}
}

func (c *themeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/themes")
	h.Use(c.auth)
	managers := serverutils.RequireRoles(brandManagers...)
	h.Post("", managers, c.Create)
	h.Get("/brand/:brandId", c.GetByBrand)
	h.Get("/:id", c.Show)
	h.Put("/:id", managers, c.Update)
	h.Delete("/:id", managers, c.Delete)
}

func (c *themeController) Create(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateThemeRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Theme created", res))
}

func (c *themeController) GetByBrand(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	brandId, err := serverutils.ParamID(ctx, "brandId")
	if err != nil {
		return err
	}

	res, err := c.service.ListByBrand(ctx.UserContext(), actor, brandId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get themes", res))
}

func (c *themeController) Show(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get theme", res))
}

func (c *themeController) Update(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateThemeRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Theme updated", res))
}

func (c *themeController) Delete(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), actor, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Theme removed", nil))
}
