package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	ParseCommand(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	auth    fiber.Handler
}

func NewChatController(service service.IChatService, auth fiber.Handler) IChatController {
	return &chatController{service: service, auth: auth}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(c.auth)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Post("/:id/message", c.SendMessage)
	h.Post("/:id/generate", c.Generate)
	h.Post("/:id/parse-command", c.ParseCommand)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateChatRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Chat created", res))
}

func (c *chatController) GetAll(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	var query dto.ChatListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperror.Validation("Invalid query")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), actor, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all chats", res))
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse("Success get chat", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.SendMessageRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatController) Generate(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.GenerateInChatRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Content generated", res))
}

func (c *chatController) ParseCommand(ctx *fiber.Ctx) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.ParseCommandRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ParseCommand(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Command parsed", res))
}
