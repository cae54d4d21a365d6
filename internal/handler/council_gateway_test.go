package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ai-council-be/internal/constant"
	"ai-council-be/internal/dto"
	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/pkg/testutil"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/internal/service"
	internalWS "ai-council-be/internal/websocket"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/council"
	"ai-council-be/pkg/events"
	"ai-council-be/pkg/llm"
	"ai-council-be/pkg/usage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gatewaySecret = "gateway-secret"

type scriptedCompleter struct {
	mu     sync.Mutex
	calls  int
	failOn int
}

func (s *scriptedCompleter) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	if call == s.failOn {
		return nil, errors.New("model exploded")
	}
	return &llm.CompletionResult{Content: "answer", Model: req.Model, TokensUsed: 3, EstimatedCost: 0.002}, nil
}

type countingMetrics struct {
	mu  sync.Mutex
	out map[string]int
}

func (m *countingMetrics) GatewayConnect()    {}
func (m *countingMetrics) GatewayDisconnect() {}
func (m *countingMetrics) GatewayEvent(event, direction string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if direction == "out" {
		m.out[event]++
	}
}

type gatewayFixture struct {
	gateway   *CouncilGateway
	hub       *internalWS.Hub
	factory   unitofwork.RepositoryFactory
	completer *scriptedCompleter
	metrics   *countingMetrics
	owner     *entity.User
	councilId uuid.UUID
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	log := logger.NewNopLogger()
	f := unitofwork.NewRepositoryFactory(testutil.NewSQLite(t))
	catalog := agents.Default()

	owner := &entity.User{Email: "gw@example.com", PasswordHash: "x", SubscriptionTier: entity.TierFree}
	require.NoError(t, f.NewUnitOfWork(context.Background()).UserRepository().Create(context.Background(), owner))

	councils := service.NewCouncilService(f, catalog, events.NopPublisher{}, log)
	c, err := councils.Create(context.Background(), owner.Id, &dto.CreateCouncilRequest{
		Name:        "Realtime",
		Description: "A council used by the realtime gateway tests",
		Agent1Id:    "agent-coder",
		Agent2Id:    "agent-writer",
		Agent3Id:    "agent-strategist",
		Agent4Id:    "agent-debugger",
	})
	require.NoError(t, err)

	completer := &scriptedCompleter{}
	orch := council.NewOrchestrator(catalog, completer, service.NewCouncilTranscript(f), log)
	chat := service.NewCouncilChatService(councils, orch, usage.NewTracker(log), events.NopPublisher{}, 0, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := internalWS.NewHub(nil, log)
	go hub.Run(ctx)

	metrics := &countingMetrics{out: map[string]int{}}
	return &gatewayFixture{
		gateway:   NewCouncilGateway(hub, councils, chat, gatewaySecret, time.Millisecond, metrics, log),
		hub:       hub,
		factory:   f,
		completer: completer,
		metrics:   metrics,
		owner:     owner,
		councilId: c.Id,
	}
}

func (fx *gatewayFixture) client(userId uuid.UUID) *internalWS.Client {
	c := internalWS.NewClient(fx.hub, nil, userId, nil)
	fx.hub.Register(c)
	return c
}

func send(t *testing.T, g *CouncilGateway, c *internalWS.Client, event string, data any) {
	t.Helper()
	msg, err := internalWS.Encode(event, data)
	require.NoError(t, err)
	g.Handle(c, msg)
}

func next(t *testing.T, c *internalWS.Client) (string, map[string]any) {
	t.Helper()
	select {
	case msg := <-c.Send:
		f, err := internalWS.Decode(msg)
		require.NoError(t, err)
		var data map[string]any
		require.NoError(t, json.Unmarshal(f.Data, &data))
		return f.Event, data
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return "", nil
	}
}

func TestGatewayFullTurn(t *testing.T) {
	fx := newGatewayFixture(t)
	c := fx.client(fx.owner.Id)
	id := fx.councilId.String()

	send(t, fx.gateway, c, constant.EventJoinCouncil, map[string]string{"councilId": id})
	event, data := next(t, c)
	require.Equal(t, constant.EventJoinedCouncil, event)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, "Realtime", data["councilName"])
	assert.True(t, fx.hub.InRoom(c, constant.CouncilRoom(id)))

	send(t, fx.gateway, c, constant.EventSendMessage, map[string]string{"councilId": id, "content": "  What first?  "})

	event, data = next(t, c)
	require.Equal(t, constant.EventUserMessage, event)
	assert.Equal(t, "What first?", data["content"])
	assert.NotEmpty(t, data["messageId"])

	event, data = next(t, c)
	require.Equal(t, constant.EventAgentTyping, event)
	assert.Equal(t, float64(1), data["agentNumber"])
	assert.Equal(t, float64(4), data["totalAgents"])

	wantAgents := []string{"agent-coder", "agent-writer", "agent-strategist", "agent-debugger"}
	for _, want := range wantAgents {
		event, data = next(t, c)
		require.Equal(t, constant.EventAgentResponse, event)
		assert.Equal(t, want, data["agentId"])
		assert.Equal(t, "answer", data["content"])
		assert.NotEmpty(t, data["messageId"])
	}

	event, data = next(t, c)
	require.Equal(t, constant.EventAllAgentsResponded, event)
	assert.Equal(t, float64(4), data["totalResponses"])

	fx.metrics.mu.Lock()
	assert.Equal(t, 4, fx.metrics.out[constant.EventAgentResponse])
	fx.metrics.mu.Unlock()
}

func TestGatewayRejections(t *testing.T) {
	fx := newGatewayFixture(t)
	id := fx.councilId.String()

	stranger := &entity.User{Email: "stranger@example.com", PasswordHash: "x", SubscriptionTier: entity.TierFree}
	require.NoError(t, fx.factory.NewUnitOfWork(context.Background()).UserRepository().Create(context.Background(), stranger))

	tests := []struct {
		name    string
		userId  uuid.UUID
		event   string
		data    any
		wantMsg string
	}{
		{name: "join foreign council", userId: stranger.Id, event: constant.EventJoinCouncil,
			data: map[string]string{"councilId": id}, wantMsg: "Unauthorized: You do not have access to this council"},
		{name: "join missing council", userId: fx.owner.Id, event: constant.EventJoinCouncil,
			data: map[string]string{"councilId": uuid.NewString()}, wantMsg: "Council not found"},
		{name: "empty message", userId: fx.owner.Id, event: constant.EventSendMessage,
			data: map[string]string{"councilId": id, "content": "   "}, wantMsg: "Message content cannot be empty"},
		{name: "long message", userId: fx.owner.Id, event: constant.EventSendMessage,
			data: map[string]string{"councilId": id, "content": strings.Repeat("x", 2001)}, wantMsg: "Message too long (max 2000 characters)"},
		{name: "unknown event", userId: fx.owner.Id, event: "dance", data: map[string]string{}, wantMsg: "Unknown event: dance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fx.client(tt.userId)
			send(t, fx.gateway, c, tt.event, tt.data)
			event, data := next(t, c)
			assert.Equal(t, constant.EventError, event)
			assert.Equal(t, tt.wantMsg, data["message"])
			assert.Equal(t, 0, fx.hub.RoomSize(constant.CouncilRoom(id)))
		})
	}

	c := fx.client(fx.owner.Id)
	fx.gateway.Handle(c, []byte("{not json"))
	event, data := next(t, c)
	assert.Equal(t, constant.EventError, event)
	assert.Equal(t, "Invalid message format", data["message"])

	assert.Equal(t, 0, fx.completer.calls)
}

func TestGatewayPartialTurnDeliversPersistedReplies(t *testing.T) {
	fx := newGatewayFixture(t)
	fx.completer.failOn = 3
	c := fx.client(fx.owner.Id)
	id := fx.councilId.String()
	fx.hub.Join(c, constant.CouncilRoom(id))

	send(t, fx.gateway, c, constant.EventSendMessage, map[string]string{"councilId": id, "content": "Go"})

	got := []string{}
	for i := 0; i < 5; i++ {
		event, _ := next(t, c)
		got = append(got, event)
	}
	assert.Equal(t, []string{
		constant.EventUserMessage,
		constant.EventAgentTyping,
		constant.EventAgentResponse,
		constant.EventAgentResponse,
		constant.EventError,
	}, got)
}

func TestGatewayRoomKeyIgnoresIdSpelling(t *testing.T) {
	fx := newGatewayFixture(t)
	c := fx.client(fx.owner.Id)
	id := fx.councilId.String()
	room := constant.CouncilRoom(id)

	send(t, fx.gateway, c, constant.EventJoinCouncil, map[string]string{"councilId": strings.ToUpper(id)})
	event, data := next(t, c)
	require.Equal(t, constant.EventJoinedCouncil, event)
	assert.Equal(t, id, data["councilId"])
	assert.True(t, fx.hub.InRoom(c, room))

	send(t, fx.gateway, c, constant.EventSendMessage, map[string]string{"councilId": id, "content": "Hello"})
	event, _ = next(t, c)
	assert.Equal(t, constant.EventUserMessage, event)
	for i := 0; i < 6; i++ {
		event, _ = next(t, c)
	}
	assert.Equal(t, constant.EventAllAgentsResponded, event)

	send(t, fx.gateway, c, constant.EventLeaveCouncil, map[string]string{"councilId": "{" + id + "}"})
	assert.Eventually(t, func() bool { return !fx.hub.InRoom(c, room) }, time.Second, 10*time.Millisecond)
}

func TestGatewayHandshake(t *testing.T) {
	fx := newGatewayFixture(t)
	app := fiber.New()
	fx.gateway.RegisterRoutes(app)

	valid, err := serverutils.SignToken(gatewaySecret, fx.owner.Id.String(), fx.owner.Email, time.Hour)
	require.NoError(t, err)
	foreign, err := serverutils.SignToken("other-secret", fx.owner.Id.String(), fx.owner.Email, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		query      string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized, wantError: constant.MsgTokenRequired},
		{name: "bad token", query: "?token=garbage", wantStatus: http.StatusUnauthorized, wantError: constant.MsgTokenInvalid},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized, wantError: constant.MsgTokenInvalid},
		{name: "valid token without upgrade", query: "?token=" + valid, wantStatus: http.StatusUpgradeRequired},
		{name: "valid header without upgrade", header: "Bearer " + valid, wantStatus: http.StatusUpgradeRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws/council"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantError != "" {
				var body map[string]any
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}
