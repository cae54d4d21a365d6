package service

import (
	"context"
	"testing"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/recommend"
	"ai-council-be/pkg/usage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agentFixture struct {
	svc       IAgentService
	tracker   *usage.Tracker
	completer *fakeCompleter
	user      *entity.User
}

func newAgentFixture(t *testing.T, tier entity.SubscriptionTier) *agentFixture {
	t.Helper()
	f := newFactory(t)
	catalog := agents.Default()
	completer := &fakeCompleter{}
	tracker := usage.NewTracker(nopLog)
	recommender := recommend.NewRecommender(catalog, completer, nopLog)
	return &agentFixture{
		svc:       NewAgentService(catalog, recommender, completer, tracker, f, nopLog),
		tracker:   tracker,
		completer: completer,
		user:      seedUser(t, f, "agents@example.com", tier),
	}
}

func (fx *agentFixture) fill(n int) {
	for i := 0; i < n; i++ {
		fx.tracker.Record(fx.user.Id.String(), "gpt-4", 1, 0, usage.EndpointChat)
	}
}

func TestAgentCatalogQueries(t *testing.T) {
	fx := newAgentFixture(t, entity.TierFree)

	templates := fx.svc.Templates()
	assert.Equal(t, len(templates.Agents), templates.Total)
	assert.Equal(t, 8, templates.CategoryCounts[agents.CategoryCoding])

	byCat, err := fx.svc.ByCategory("Coding")
	require.NoError(t, err)
	assert.Equal(t, agents.CategoryCoding, byCat.Category)
	assert.Equal(t, 8, byCat.Total)

	_, err = fx.svc.ByCategory("gardening")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Invalid category. Must be one of: ")

	found, err := fx.svc.Search("bug")
	require.NoError(t, err)
	assert.Equal(t, "bug", found.Query)
	assert.NotZero(t, found.Total)

	_, err = fx.svc.Search("   ")
	assert.ErrorIs(t, err, ErrAgentQueryRequired)
}

func TestAgentTest(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown agent is checked before the limit", func(t *testing.T) {
		fx := newAgentFixture(t, entity.TierFree)
		fx.fill(20)
		_, err := fx.svc.Test(ctx, fx.user.Id, &dto.TestAgentRequest{AgentId: "agent-nope", Prompt: "hello there"})
		assert.EqualError(t, err, "Agent not found: agent-nope")
	})

	t.Run("under the limit", func(t *testing.T) {
		fx := newAgentFixture(t, entity.TierFree)
		fx.fill(19)
		res, err := fx.svc.Test(ctx, fx.user.Id, &dto.TestAgentRequest{AgentId: "agent-coder", Prompt: "  Write a loop  "})
		require.NoError(t, err)
		assert.Equal(t, "CodeMaster", res.AgentName)
		assert.Equal(t, "coder", res.AgentRole)
		assert.Equal(t, "gpt-4", res.Model)

		require.Len(t, fx.completer.requests, 1)
		req := fx.completer.requests[0]
		assert.Equal(t, "Write a loop", req.UserPrompt)
		coder, _ := agents.Default().GetByID("agent-coder")
		assert.Equal(t, coder.SystemPrompt, req.SystemPrompt)

		records := fx.tracker.Records(fx.user.Id.String())
		require.Len(t, records, 20)
		assert.Equal(t, usage.EndpointTest, records[19].Endpoint)
	})

	t.Run("at the limit", func(t *testing.T) {
		fx := newAgentFixture(t, entity.TierFree)
		fx.fill(20)
		_, err := fx.svc.Test(ctx, fx.user.Id, &dto.TestAgentRequest{AgentId: "agent-coder", Prompt: "Write a loop"})

		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 429, appErr.Code)
		assert.Contains(t, appErr.Message, "Limit: 20 requests/hour for FREE tier.")
		assert.Equal(t, dto.RateLimitDetails{RequestsThisHour: 20, Limit: 20}, appErr.Data)
		assert.Equal(t, 0, fx.completer.calls)
	})

	t.Run("pro tier has a higher ceiling", func(t *testing.T) {
		fx := newAgentFixture(t, entity.TierPro)
		fx.fill(20)
		_, err := fx.svc.Test(ctx, fx.user.Id, &dto.TestAgentRequest{AgentId: "agent-coder", Prompt: "Write a loop"})
		require.NoError(t, err)
	})

	t.Run("missing user counts as free", func(t *testing.T) {
		fx := newAgentFixture(t, entity.TierPro)
		ghost := uuid.New()
		for i := 0; i < 20; i++ {
			fx.tracker.Record(ghost.String(), "gpt-4", 1, 0, usage.EndpointChat)
		}
		_, err := fx.svc.Test(ctx, ghost, &dto.TestAgentRequest{AgentId: "agent-coder", Prompt: "Write a loop"})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 429, appErr.Code)
	})
}

func TestAgentRecommendTracksUsage(t *testing.T) {
	fx := newAgentFixture(t, entity.TierFree)

	res, err := fx.svc.Recommend(context.Background(), fx.user.Id, &dto.RecommendRequest{Description: "  I want to build a web app and debug my code  "})
	require.NoError(t, err)
	assert.Equal(t, "I want to build a web app and debug my code", res.Description)
	assert.Len(t, res.Recommendations, recommend.TeamSize)

	records := fx.tracker.Records(fx.user.Id.String())
	require.Len(t, records, 1)
	assert.Equal(t, usage.EndpointRecommendation, records[0].Endpoint)

	fx.fill(19)
	_, err = fx.svc.Recommend(context.Background(), fx.user.Id, &dto.RecommendRequest{Description: "Another long description"})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 429, appErr.Code)
}

func TestAgentUsage(t *testing.T) {
	fx := newAgentFixture(t, entity.TierBusiness)
	fx.fill(3)

	res, err := fx.svc.Usage(context.Background(), fx.user.Id)
	require.NoError(t, err)
	assert.Equal(t, "BUSINESS", res.Tier)
	assert.Equal(t, 3, res.Stats.TotalRequests)
	assert.True(t, res.Limit.Allowed)
	assert.Equal(t, 500, res.Limit.Limit)
}
