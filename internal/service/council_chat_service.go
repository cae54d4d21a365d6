// FILE: internal/service/council_chat_service.go
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/council"
	"ai-council-be/pkg/events"
	"ai-council-be/pkg/usage"

	"github.com/google/uuid"
)

const DefaultMaxMessageChars = 2000

type ICouncilChatService interface {
	// SendMessage runs one council turn. onUserMessage fires after the user's message
	// is stored and before the first agent is asked. On failure the partial result is
	// returned together with the error.
	SendMessage(ctx context.Context, userId, councilId uuid.UUID, content string, onUserMessage func(*council.StoredMessage)) (*council.TurnResult, error)
}

// TurnRunner is satisfied by *council.Orchestrator.
type TurnRunner interface {
	Respond(ctx context.Context, turn council.Turn) (*council.TurnResult, error)
}

type councilChatService struct {
	councils       ICouncilService
	runner         TurnRunner
	tracker        *usage.Tracker
	eventPublisher events.Publisher
	maxChars       int
	logger         logger.ILogger
}

func NewCouncilChatService(
	councils ICouncilService,
	runner TurnRunner,
	tracker *usage.Tracker,
	eventPublisher events.Publisher,
	maxChars int,
	log logger.ILogger,
) ICouncilChatService {
	if maxChars <= 0 {
		maxChars = DefaultMaxMessageChars
	}
	return &councilChatService{
		councils:       councils,
		runner:         runner,
		tracker:        tracker,
		eventPublisher: eventPublisher,
		maxChars:       maxChars,
		logger:         log,
	}
}

// ValidateMessage applies the content rules shared by the socket and REST paths.
func ValidateMessage(content string, maxChars int) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrMessageEmpty
	}
	if utf8.RuneCountInString(content) > maxChars {
		return "", messageTooLong(maxChars)
	}
	return trimmed, nil
}

func (s *councilChatService) SendMessage(ctx context.Context, userId, councilId uuid.UUID, content string, onUserMessage func(*council.StoredMessage)) (*council.TurnResult, error) {
	text, err := ValidateMessage(content, s.maxChars)
	if err != nil {
		return nil, err
	}

	c, err := s.councils.Authorize(ctx, userId, councilId)
	if err != nil {
		return nil, err
	}

	seats := make([]council.Seat, len(c.Seats))
	for i, seat := range c.Seats {
		seats[i] = council.Seat{AgentID: seat.AgentId}
		if seat.CustomPrompt != nil {
			seats[i].CustomPrompt = *seat.CustomPrompt
		}
	}

	result, err := s.runner.Respond(ctx, council.Turn{
		CouncilID:     councilId,
		Seats:         seats,
		Message:       text,
		OnUserMessage: onUserMessage,
	})

	// Partial turns are metered too.
	if result != nil {
		for _, r := range result.Responses {
			s.tracker.Record(userId.String(), r.Model, r.TokensUsed, r.Cost, usage.EndpointChat)
		}
	}
	if err != nil {
		return result, err
	}

	totalTokens := 0
	for _, r := range result.Responses {
		totalTokens += r.TokensUsed
	}
	publishEvent(ctx, s.eventPublisher, s.logger, events.New(events.TypeCouncilTurnCompleted, map[string]interface{}{
		"council_id":  councilId.String(),
		"user_id":     userId.String(),
		"responses":   len(result.Responses),
		"tokens_used": totalTokens,
	}))
	return result, nil
}
