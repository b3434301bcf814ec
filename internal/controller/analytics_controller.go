package controller

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/service"
	"flowa-be/pkg/access"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	ContentStats(ctx *fiber.Ctx) error
	SocialPerformance(ctx *fiber.Ctx) error
	ContentAnalysis(ctx *fiber.Ctx) error
	ImprovementSuggestions(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
	auth    fiber.Handler
}

func NewAnalyticsController(service service.IAnalyticsService, auth fiber.Handler) IAnalyticsController {
	return &analyticsController{service: service, auth: auth}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics")
	h.Use(c.auth, serverutils.RequireRoles(contentCreators...))
	h.Get("/content-stats", c.ContentStats)
	h.Get("/social-performance", c.SocialPerformance)
	h.Get("/content-analysis", c.ContentAnalysis)
	h.Get("/improvement-suggestions", c.ImprovementSuggestions)
}

func (c *analyticsController) ContentStats(ctx *fiber.Ctx) error {
	return c.serve(ctx, func(actor access.Actor, q *dto.AnalyticsQuery) (interface{}, error) {
		return c.service.ContentStats(ctx.UserContext(), actor, q)
	})
}

func (c *analyticsController) SocialPerformance(ctx *fiber.Ctx) error {
	return c.serve(ctx, func(actor access.Actor, q *dto.AnalyticsQuery) (interface{}, error) {
		return c.service.SocialPerformance(ctx.UserContext(), actor, q)
	})
}

func (c *analyticsController) ContentAnalysis(ctx *fiber.Ctx) error {
	return c.serve(ctx, func(actor access.Actor, q *dto.AnalyticsQuery) (interface{}, error) {
		return c.service.ContentAnalysis(ctx.UserContext(), actor, q)
	})
}

func (c *analyticsController) ImprovementSuggestions(ctx *fiber.Ctx) error {
	return c.serve(ctx, func(actor access.Actor, q *dto.AnalyticsQuery) (interface{}, error) {
		return c.service.ImprovementSuggestions(ctx.UserContext(), actor, q)
	})
}

func (c *analyticsController) serve(ctx *fiber.Ctx, fetch func(access.Actor, *dto.AnalyticsQuery) (interface{}, error)) error {
	actor, err := serverutils.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	var query dto.AnalyticsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperror.Validation("Invalid query")
	}

	res, err := fetch(actor, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analytics", res))
}
