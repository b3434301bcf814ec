package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISocialController interface {
	RegisterRoutes(r fiber.Router)
	Connect(ctx *fiber.Ctx) error
	GetAccounts(ctx *fiber.Ctx) error
	CreatePost(ctx *fiber.Ctx) error
	GetPosts(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type socialController struct {
	service service.ISocialService
	auth    fiber.Handler
}

func NewSocialController(service service.ISocialService, auth fiber.Handler) ISocialController {
	return &socialController{service: service, auth: auth}
}

func (c *socialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/social")
	h.Use(c.auth)
	h.Post("/connect", c.Connect)
	h.Get("/accounts", c.GetAccounts)
	h.Post("/post", c.CreatePost)
	h.Get("/posts", c.GetPosts)
	h.Post("/schedule", c.Schedule)
	h.Put("/posts/:id/status", c.UpdateStatus)
}

func (c *socialController) Connect(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.ConnectSocialRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Connect(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Social account connected", res))
}

func (c *socialController) GetAccounts(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Accounts(ctx.UserContext(), actor)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get social accounts", res))
}

func (c *socialController) CreatePost(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateSocialPostRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreatePost(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Posts created", res))
}

func (c *socialController) GetPosts(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var query dto.SocialPostQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperror.Validation("Invalid query")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.ListPosts(ctx.UserContext(), actor, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get posts", res))
}

func (c *socialController) Schedule(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.SchedulePostsRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Schedule(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Posts scheduled", res))
}

func (c *socialController) UpdateStatus(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePostStatusRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Post status updated", res))
}
