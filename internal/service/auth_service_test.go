package service

import (
	"context"
	"testing"
	"time"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestAuthSignupLoginMe(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := NewAuthService(newFactory(t), pub, "test-secret", time.Hour, nopLog)

	name := "  Ada  "
	res, err := svc.Signup(ctx, &dto.SignupRequest{Email: " Ada@Example.com ", Password: "password1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", res.User.Email)
	assert.Equal(t, "FREE", res.User.SubscriptionTier)
	require.NotNil(t, res.User.Name)
	assert.Equal(t, "Ada", *res.User.Name)

	claims, err := serverutils.ParseToken("test-secret", res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.Id.String(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeUserSignup, pub.events[0].EventType())

	_, err = svc.Signup(ctx, &dto.SignupRequest{Email: "ada@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "ADA@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.Id, login.User.Id)

	me, err := svc.Me(ctx, res.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFactory(t), nil, "test-secret", time.Hour, nopLog)
	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "bob@example.com", Password: "password1"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{name: "wrong password", req: dto.LoginRequest{Email: "bob@example.com", Password: "password2"}},
		{name: "unknown email", req: dto.LoginRequest{Email: "nobody@example.com", Password: "password1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthSignupWithoutSecretFails(t *testing.T) {
	svc := NewAuthService(newFactory(t), nil, "", time.Hour, nopLog)
	_, err := svc.Signup(context.Background(), &dto.SignupRequest{Email: "c@example.com", Password: "password1"})
	assert.ErrorIs(t, err, serverutils.ErrMissingSecret)
}
