// FILE: internal/controller/council_controller.go
package controller

import (
	"fmt"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/service"
	"ai-council-be/pkg/council"

	"github.com/gofiber/fiber/v2"
)

type ICouncilController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type councilController struct {
	service service.ICouncilService
	chat    service.ICouncilChatService
}

func NewCouncilController(service service.ICouncilService, chat service.ICouncilChatService) ICouncilController {
	return &councilController{service: service, chat: chat}
}

func (c *councilController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/councils")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/messages", c.SendMessage)
}

func (c *councilController) Create(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateCouncilRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Council created successfully", res))
}

func (c *councilController) GetAll(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), userId, ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Found %d councils", len(res)), res))
}

func (c *councilController) Show(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "council")
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *councilController) Update(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "council")
	if err != nil {
		return err
	}
	var req dto.UpdateCouncilRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Council updated successfully", res))
}

func (c *councilController) Delete(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "council")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Council deleted successfully", nil))
}

// SendMessage runs a turn over plain HTTP and answers once all four agents have replied.
func (c *councilController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := sessionUser(ctx)
	if err != nil {
		return err
	}
	id, err := idParam(ctx, "council")
	if err != nil {
		return err
	}
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	result, err := c.chat.SendMessage(ctx.Context(), userId, id, req.Content, nil)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("", toTurnResponse(result)))
}

func toTurnResponse(result *council.TurnResult) dto.TurnResponse {
	res := dto.TurnResponse{Responses: result.Responses}
	if u := result.UserMessage; u != nil {
		res.UserMessage = dto.UserMessageResponse{MessageId: u.ID.String(), Content: u.Content, CreatedAt: u.CreatedAt}
	}
	return res
}
