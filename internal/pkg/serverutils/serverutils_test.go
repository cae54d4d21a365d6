package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Description string `json:"description" validate:"required,min=10,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"omitempty,hasletter"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{name: "valid", req: sampleRequest{Description: "long enough text"}},
		{name: "missing", req: sampleRequest{}, wantErr: "description is required"},
		{name: "too short", req: sampleRequest{Description: "short"}, wantErr: "description must be at least 10 characters"},
		{name: "too long", req: sampleRequest{Description: "this description is far too long"}, wantErr: "description must be at most 20 characters"},
		{name: "bad email", req: sampleRequest{Description: "long enough text", Email: "nope"}, wantErr: "email must be a valid email address"},
		{name: "digits only password", req: sampleRequest{Description: "long enough text", Password: "12345678"}, wantErr: "password must contain at least one letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestSignAndParseToken(t *testing.T) {
	token, err := SignToken("secret", "user-1", "a@b.co", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.co", claims.Email)
	assert.Equal(t, TokenIssuer, claims.Issuer)

	_, err = ParseToken("other", token)
	assert.Error(t, err)

	expired, err := SignToken("secret", "user-1", "a@b.co", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken("secret", expired)
	assert.Error(t, err)

	_, err = SignToken("", "user-1", "a@b.co", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
	_, err = ParseToken("", token)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		assert.Equal(t, tt.want, got, tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
	}
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-secret")

	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(ctx *fiber.Ctx) error {
		id, _ := UserID(ctx)
		return ctx.JSON(SuccessResponse("ok", id))
	})

	token, err := SignToken("middleware-secret", "user-42", "x@y.z", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "no header", header: "", status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-token", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			if tt.status == http.StatusOK {
				assert.Equal(t, "user-42", body["data"])
			} else {
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/app", func(ctx *fiber.Ctx) error {
		return TooManyRequests("slow down", fiber.Map{"limit": 20})
	})
	app.Get("/wrapped", func(ctx *fiber.Ctx) error {
		return fmt.Errorf("load council: %w", NotFound("Council not found"))
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad body")
	})
	app.Get("/upstream", func(ctx *fiber.Ctx) error {
		return upstream.FromStatus("openai", http.StatusTooManyRequests, []byte("raw provider text"))
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("db exploded")
	})

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/app", http.StatusTooManyRequests, "slow down"},
		{"/wrapped", http.StatusNotFound, "Council not found"},
		{"/fiber", http.StatusBadRequest, "bad body"},
		{"/upstream", http.StatusTooManyRequests, "AI provider rate limit exceeded, please try again later"},
		{"/boom", http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"])
			if tt.path == "/app" {
				assert.Equal(t, map[string]interface{}{"limit": float64(20)}, body["data"])
			}
		})
	}
}
