// FILE: internal/controller/memory_controller.go
package controller

import (
	"fmt"
	"strings"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMemoryController interface {
	RegisterRoutes(r fiber.Router)
	Store(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type memoryController struct {
	service service.IMemoryService
}

func NewMemoryController(service service.IMemoryService) IMemoryController {
	return &memoryController{service: service}
}

func (c *memoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memory")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Store)
	h.Get("", c.GetAll)
	// Static segments before :id
	h.Post("/search", c.Search)
	h.Get("/stats", c.Stats)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *memoryController) Store(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	var req dto.StoreMemoryRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Store(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Memory stored successfully", res))
}

func (c *memoryController) GetAll(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}

	var tags []string
	if raw := ctx.Query("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	res, err := c.service.List(ctx.Context(), userId, tags)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Found %d memories", len(res)), res))
}

func (c *memoryController) Show(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "memory")
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *memoryController) Update(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "memory")
	if err != nil {
		return err
	}
	var req dto.UpdateMemoryRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Memory updated successfully", res))
}

func (c *memoryController) Delete(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "memory")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Memory deleted successfully", nil))
}

func (c *memoryController) Search(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	var req dto.SearchMemoryRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Found %d memories", len(res)), res))
}

func (c *memoryController) Stats(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", res))
}
