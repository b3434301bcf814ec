package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBrandController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type brandController struct {
	service service.IBrandService
	auth    fiber.Handler
}

func NewBrandController(service service.IBrandService, auth fiber.Handler) IBrandController {
	return &brandController{service: service, auth: auth}
}

func (c *brandController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/brands")
	h.Use(c.auth)
	managers := serverutils.RequireRoles(brandManagers...)
	h.Post("", managers, c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Put("/:id", managers, c.Update)
	h.Delete("/:id", managers, c.Delete)
}

func (c *brandController) Create(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateBrandRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Brand created", res))
}

func (c *brandController) GetAll(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), actor)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all brands", res))
}

func (c *brandController) Show(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse("Success get brand", res))
}

func (c *brandController) Update(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateBrandRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Brand updated", res))
}

func (c *brandController) Delete(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Brand removed", nil))
}
