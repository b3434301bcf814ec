package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Optimize(ctx *fiber.Ctx) error
	Keywords(ctx *fiber.Ctx) error
	GenerateImage(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
	auth    fiber.Handler
}

func NewContentController(service service.IContentService, auth fiber.Handler) IContentController {
	return &contentController{service: service, auth: auth}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content")
	h.Use(c.auth, serverutils.RequireRoles(contentCreators...))
	h.Post("/generate", c.Generate)
	h.Post("/optimize", c.Optimize)
	h.Get("/keywords", c.Keywords)
	h.Post("/generate-image", c.GenerateImage)
}

func (c *contentController) Generate(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.GenerateContentRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Content generated", res))
}

func (c *contentController) Optimize(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.OptimizeContentRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Optimize(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Content optimized", res))
}

func (c *contentController) Keywords(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var query dto.KeywordQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperror.Validation("Invalid query")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.Keywords(ctx.UserContext(), actor, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Keyword analysis", res))
}

func (c *contentController) GenerateImage(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.GenerateImageRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GenerateImage(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Image generated", res))
}
