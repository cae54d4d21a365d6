package controller

import (
	"ai-council-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	errInvalidBody = serverutils.BadRequest("Invalid request body")
	errNoSession   = serverutils.Unauthorized("Invalid or expired token")
)

// sessionUser is the caller's id. It comes from the verified token only.
func sessionUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := serverutils.UserID(ctx)
	if !ok {
		return uuid.Nil, errNoSession
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errNoSession
	}
	return id, nil
}

func idParam(ctx *fiber.Ctx, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("Invalid " + what + " id")
	}
	return id, nil
}

// bindBody parses and validates the JSON body into req.
func bindBody(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		return errInvalidBody
	}
	return serverutils.ValidateRequest(req)
}
