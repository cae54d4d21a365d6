// FILE: internal/controller/agent_controller.go
package controller

import (
	"ai-council-be/internal/dto"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Templates(ctx *fiber.Ctx) error
	ByCategory(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
	Usage(ctx *fiber.Ctx) error
}

type agentController struct {
	service service.IAgentService
}

func NewAgentController(service service.IAgentService) IAgentController {
	return &agentController{service: service}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agents")
	// Catalog reads are public
	h.Get("/templates", c.Templates)
	h.Get("/templates/:category", c.ByCategory)
	h.Get("/search", c.Search)

	h.Post("/recommend", serverutils.JwtMiddleware, c.Recommend)
	h.Post("/test", serverutils.JwtMiddleware, c.Test)
	h.Get("/usage", serverutils.JwtMiddleware, c.Usage)
}

func (c *agentController) Templates(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("", c.service.Templates()))
}

func (c *agentController) ByCategory(ctx *fiber.Ctx) error {
	res, err := c.service.ByCategory(ctx.Params("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *agentController) Search(ctx *fiber.Ctx) error {
	res, err := c.service.Search(ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *agentController) Recommend(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	var req dto.RecommendRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Recommend(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *agentController) Test(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	var req dto.TestAgentRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Test(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Agent test successful", res))
}

func (c *agentController) Usage(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Usage(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage statistics retrieved", res))
}
