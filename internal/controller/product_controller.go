package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetByBrand(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
	auth    fiber.Handler
}

func NewProductController(service service.IProductService, auth fiber.Handler) IProductController {
	return &productController{service: service, auth: auth}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Use(c.auth)
	managers := serverutils.RequireRoles(brandManagers...)
	h.Post("", managers, c.Create)
	h.Get("/brand/:brandId", c.GetByBrand)
	h.Get("/:id", c.Show)
	h.Put("/:id", managers, c.Update)
	h.Delete("/:id", managers, c.Delete)
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateProductRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Product created", res))
}

func (c *productController) GetByBrand(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateProductRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Product updated", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Product removed", nil))
}
