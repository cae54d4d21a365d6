package serverutils

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr, ok := BearerToken(ctx.Get(fiber.HeaderAuthorization))
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "No token provided"))
	}

	claims, err := ParseToken(os.Getenv("JWT_SECRET"), tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid or expired token"))
	}

	ctx.Locals("user_id", claims.UserID)
	ctx.Locals("email", claims.Email)
	return ctx.Next()
}
