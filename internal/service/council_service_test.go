package service

import (
	"context"
	"testing"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func councilRequest(name string) *dto.CreateCouncilRequest {
	custom := "Answer only in haiku."
	return &dto.CreateCouncilRequest{
		Name:         name,
		Description:  "Help me ship a small Go web service this month",
		Agent1Id:     "agent-coder",
		Agent2Id:     "agent-writer",
		Agent3Id:     "agent-strategist",
		Agent4Id:     "agent-debugger",
		Agent4Custom: &custom,
	}
}

func newCouncilService(t *testing.T) (ICouncilService, unitofwork.RepositoryFactory, *recordingPublisher) {
	f := newFactory(t)
	pub := &recordingPublisher{}
	return NewCouncilService(f, agents.Default(), pub, nopLog), f, pub
}

func TestCouncilCreateWritesSystemMessage(t *testing.T) {
	ctx := context.Background()
	svc, f, pub := newCouncilService(t)
	owner := seedUser(t, f, "owner@example.com", entity.TierFree)

	c, err := svc.Create(ctx, owner.Id, councilRequest("Launch Team"))
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", c.Status)
	assert.Nil(t, c.Agent1Custom)
	require.NotNil(t, c.Agent4Custom)

	detail, err := svc.Get(ctx, owner.Id, c.Id)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "SYSTEM", detail.Messages[0].Role)
	assert.Equal(t, `Council "Launch Team" created! Your AI team is ready to help you achieve your goal.`, detail.Messages[0].Content)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeCouncilCreated, pub.events[0].EventType())
}

func TestCouncilCreateRejectsUnknownAgent(t *testing.T) {
	svc, f, _ := newCouncilService(t)
	owner := seedUser(t, f, "owner@example.com", entity.TierFree)

	req := councilRequest("Bad Team")
	req.Agent3Id = "agent-nope"
	_, err := svc.Create(context.Background(), owner.Id, req)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Agent not found: agent-nope", appErr.Message)

	list, err := svc.List(context.Background(), owner.Id, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCouncilOwnership(t *testing.T) {
	ctx := context.Background()
	svc, f, _ := newCouncilService(t)
	owner := seedUser(t, f, "owner@example.com", entity.TierFree)
	other := seedUser(t, f, "other@example.com", entity.TierFree)

	c, err := svc.Create(ctx, owner.Id, councilRequest("Private"))
	require.NoError(t, err)

	newName := "Hijacked"
	tests := []struct {
		name string
		call func(userId, councilId uuid.UUID) error
	}{
		{name: "get", call: func(u, id uuid.UUID) error { _, err := svc.Get(ctx, u, id); return err }},
		{name: "update", call: func(u, id uuid.UUID) error {
			_, err := svc.Update(ctx, u, id, &dto.UpdateCouncilRequest{Name: &newName})
			return err
		}},
		{name: "delete", call: func(u, id uuid.UUID) error { return svc.Delete(ctx, u, id) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(other.Id, c.Id), ErrCouncilForbidden)
			assert.ErrorIs(t, tt.call(owner.Id, uuid.New()), ErrCouncilNotFound)
		})
	}

	detail, err := svc.Get(ctx, owner.Id, c.Id)
	require.NoError(t, err)
	assert.Equal(t, "Private", detail.Name)
}

func TestCouncilListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc, f, _ := newCouncilService(t)
	owner := seedUser(t, f, "owner@example.com", entity.TierFree)

	first, err := svc.Create(ctx, owner.Id, councilRequest("First"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, owner.Id, councilRequest("Second"))
	require.NoError(t, err)

	list, err := svc.List(ctx, owner.Id, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Id, list[0].Id)
	require.NotNil(t, list[0].MessageCount)
	assert.Equal(t, int64(1), *list[0].MessageCount)

	renamed := "First (renamed)"
	archived := "ARCHIVED"
	updated, err := svc.Update(ctx, owner.Id, first.Id, &dto.UpdateCouncilRequest{Name: &renamed, Status: &archived})
	require.NoError(t, err)
	assert.Equal(t, renamed, updated.Name)
	assert.Equal(t, "ARCHIVED", updated.Status)

	require.NoError(t, svc.Delete(ctx, owner.Id, second.Id))

	active, err := svc.List(ctx, owner.Id, "ACTIVE")
	require.NoError(t, err)
	assert.Empty(t, active)

	deleted, err := svc.List(ctx, owner.Id, "deleted")
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, second.Id, deleted[0].Id)

	_, err = svc.List(ctx, owner.Id, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
