package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-council-be/internal/constant"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/service"
	internalWS "ai-council-be/internal/websocket"
	"ai-council-be/pkg/council"
	"ai-council-be/pkg/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GatewayMetrics is satisfied by *metrics.Metrics.
type GatewayMetrics interface {
	GatewayConnect()
	GatewayDisconnect()
	GatewayEvent(event, direction string)
}

type nopGatewayMetrics struct{}

func (nopGatewayMetrics) GatewayConnect()             {}
func (nopGatewayMetrics) GatewayDisconnect()          {}
func (nopGatewayMetrics) GatewayEvent(string, string) {}

type councilPayload struct {
	CouncilId string `json:"councilId"`
	Content   string `json:"content"`
}

// CouncilGateway is the realtime council chat endpoint.
type CouncilGateway struct {
	hub       *internalWS.Hub
	councils  service.ICouncilService
	chat      service.ICouncilChatService
	jwtSecret string
	delay     time.Duration
	metrics   GatewayMetrics
	logger    logger.ILogger
}

func NewCouncilGateway(
	hub *internalWS.Hub,
	councils service.ICouncilService,
	chat service.ICouncilChatService,
	jwtSecret string,
	delay time.Duration,
	metrics GatewayMetrics,
	log logger.ILogger,
) *CouncilGateway {
	if metrics == nil {
		metrics = nopGatewayMetrics{}
	}
	return &CouncilGateway{
		hub:       hub,
		councils:  councils,
		chat:      chat,
		jwtSecret: jwtSecret,
		delay:     delay,
		metrics:   metrics,
		logger:    log,
	}
}

func (g *CouncilGateway) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/council", g.ServeWs)
}

// handshakeToken reads the token from the query string first, then the Authorization header.
func handshakeToken(c *fiber.Ctx) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	token, _ := serverutils.BearerToken(c.Get(fiber.HeaderAuthorization))
	return token
}

// ServeWs authenticates the handshake and upgrades. Nothing is accepted before the token verifies.
func (g *CouncilGateway) ServeWs(c *fiber.Ctx) error {
	tokenStr := handshakeToken(c)
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, constant.MsgTokenRequired))
	}

	claims, err := serverutils.ParseToken(g.jwtSecret, tokenStr)
	if err != nil {
		g.logger.Warn("CouncilGateway", "Invalid token in websocket handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, constant.MsgTokenInvalid))
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, constant.MsgTokenInvalid))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		g.metrics.GatewayConnect()
		defer g.metrics.GatewayDisconnect()

		g.logger.Info("CouncilGateway", "Socket connected", map[string]interface{}{"user_id": userID.String()})
		internalWS.ServeWs(g.hub, conn, userID, g.Handle)
		g.logger.Info("CouncilGateway", "Socket disconnected", map[string]interface{}{"user_id": userID.String()})
	})(c)
}

// Handle dispatches one inbound frame. Turns run on their own goroutine so the read loop keeps serving.
func (g *CouncilGateway) Handle(c *internalWS.Client, msg []byte) {
	frame, err := internalWS.Decode(msg)
	if err != nil {
		g.emitError(c, constant.MsgInvalidFrame)
		return
	}
	var payload councilPayload
	if len(frame.Data) > 0 {
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			g.emitError(c, constant.MsgInvalidFrame)
			return
		}
	}
	g.metrics.GatewayEvent(frame.Event, "in")

	switch frame.Event {
	case constant.EventJoinCouncil:
		g.join(c, payload)
	case constant.EventSendMessage:
		go g.sendMessage(c, payload)
	case constant.EventLeaveCouncil:
		if councilID, err := uuid.Parse(payload.CouncilId); err == nil {
			g.hub.Leave(c, constant.CouncilRoom(councilID.String()))
		}
	default:
		g.emitError(c, constant.MsgUnknownEventPrefix+frame.Event)
	}
}

func (g *CouncilGateway) join(c *internalWS.Client, payload councilPayload) {
	ctx := context.Background()
	councilID, err := uuid.Parse(payload.CouncilId)
	if err != nil {
		g.emitError(c, service.ErrCouncilNotFound.Message)
		return
	}

	found, err := g.councils.Authorize(ctx, c.UserID, councilID)
	if err != nil {
		g.emitError(c, clientMessage(err, constant.MsgJoinFailed))
		return
	}

	// Rooms are keyed by the canonical id so any accepted spelling lands in the same room.
	g.hub.Join(c, constant.CouncilRoom(councilID.String()))
	g.emit(c, constant.EventJoinedCouncil, map[string]interface{}{
		"success":     true,
		"councilId":   councilID.String(),
		"councilName": found.Name,
	})
}

// sendMessage runs one turn. The turn is not cancelled if the socket goes away.
func (g *CouncilGateway) sendMessage(c *internalWS.Client, payload councilPayload) {
	ctx := context.Background()
	councilID, err := uuid.Parse(payload.CouncilId)
	if err != nil {
		g.emitError(c, service.ErrCouncilNotFound.Message)
		return
	}
	room := constant.CouncilRoom(councilID.String())

	result, err := g.chat.SendMessage(ctx, c.UserID, councilID, payload.Content, func(m *council.StoredMessage) {
		g.emitRoom(ctx, room, constant.EventUserMessage, map[string]interface{}{
			"messageId": m.ID.String(),
			"content":   m.Content,
			"createdAt": m.CreatedAt,
		})
		g.emitRoom(ctx, room, constant.EventAgentTyping, map[string]interface{}{
			"agentNumber": 1,
			"totalAgents": constant.AgentsPerCouncil,
		})
	})

	// Replies that were persisted before a failure are still delivered.
	if result != nil {
		for i, r := range result.Responses {
			if i > 0 && g.delay > 0 {
				time.Sleep(g.delay)
			}
			g.emitRoom(ctx, room, constant.EventAgentResponse, r)
		}
	}
	if err != nil {
		var turnErr *council.TurnError
		if !errors.As(err, &turnErr) {
			g.logger.Warn("CouncilGateway", "Message rejected", map[string]interface{}{
				"council_id": councilID.String(),
				"user_id":    c.UserID.String(),
				"error":      err,
			})
		}
		g.emitError(c, clientMessage(err, constant.MsgSendFailed))
		return
	}

	g.emitRoom(ctx, room, constant.EventAllAgentsResponded, map[string]interface{}{
		"totalResponses": len(result.Responses),
	})
}

// clientMessage exposes AppError and upstream messages; anything else becomes fallback.
func clientMessage(err error, fallback string) string {
	var appErr *serverutils.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if upstream.HTTPStatus(err) != 0 {
		return upstream.Phrase(err)
	}
	return fallback
}

func (g *CouncilGateway) emit(c *internalWS.Client, event string, data any) {
	if err := c.Emit(event, data); err != nil {
		g.logger.Error("CouncilGateway", "Failed to encode event", map[string]interface{}{"event": event, "error": err})
		return
	}
	g.metrics.GatewayEvent(event, "out")
}

func (g *CouncilGateway) emitError(c *internalWS.Client, message string) {
	g.emit(c, constant.EventError, map[string]string{"message": message})
}

func (g *CouncilGateway) emitRoom(ctx context.Context, room, event string, data any) {
	if err := g.hub.EmitToRoom(ctx, room, event, data); err != nil {
		g.logger.Error("CouncilGateway", "Failed to encode room event", map[string]interface{}{"event": event, "error": err})
		return
	}
	g.metrics.GatewayEvent(event, "out")
}
