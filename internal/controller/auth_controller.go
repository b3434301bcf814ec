package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	BeginRegistration(ctx *fiber.Ctx) error
	CompleteRegistration(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/register", c.Register)
	h.Post("/register/begin", c.BeginRegistration)
	h.Post("/register/complete", c.CompleteRegistration)
	h.Post("/login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *authController) BeginRegistration(ctx *fiber.Ctx) error {
	var req dto.BeginRegistrationRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.service.BeginRegistration(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Verification code sent", nil))
}

func (c *authController) CompleteRegistration(ctx *fiber.Ctx) error {
	var req dto.CompleteRegistrationRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CompleteRegistration(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}
