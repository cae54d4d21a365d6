// FILE: internal/service/council_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/repository/specification"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/events"

	"github.com/google/uuid"
)

const createdMessageFormat = "Council \"%s\" created! Your AI team is ready to help you achieve your goal."

type ICouncilService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCouncilRequest) (*dto.CouncilResponse, error)
	List(ctx context.Context, userId uuid.UUID, status string) ([]dto.CouncilResponse, error)
	Get(ctx context.Context, userId, councilId uuid.UUID) (*dto.CouncilDetailResponse, error)
	Update(ctx context.Context, userId, councilId uuid.UUID, req *dto.UpdateCouncilRequest) (*dto.CouncilResponse, error)
	Delete(ctx context.Context, userId, councilId uuid.UUID) error
	// Authorize loads a council and verifies the caller owns it.
	Authorize(ctx context.Context, userId, councilId uuid.UUID) (*entity.Council, error)
}

type councilService struct {
	uowFactory     unitofwork.RepositoryFactory
	catalog        *agents.Catalog
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewCouncilService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *agents.Catalog,
	eventPublisher events.Publisher,
	log logger.ILogger,
) ICouncilService {
	return &councilService{
		uowFactory:     uowFactory,
		catalog:        catalog,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func toCouncilResponse(c *entity.Council) dto.CouncilResponse {
	return dto.CouncilResponse{
		Id:           c.Id,
		UserId:       c.UserId,
		Name:         c.Name,
		Description:  c.Description,
		Agent1Id:     c.Seats[0].AgentId,
		Agent2Id:     c.Seats[1].AgentId,
		Agent3Id:     c.Seats[2].AgentId,
		Agent4Id:     c.Seats[3].AgentId,
		Agent1Custom: c.Seats[0].CustomPrompt,
		Agent2Custom: c.Seats[1].CustomPrompt,
		Agent3Custom: c.Seats[2].CustomPrompt,
		Agent4Custom: c.Seats[3].CustomPrompt,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Id:         m.Id,
		CouncilId:  m.CouncilId,
		Role:       string(m.Role),
		AgentId:    m.AgentId,
		Content:    m.Content,
		TokensUsed: m.TokensUsed,
		Cost:       m.Cost,
		CreatedAt:  m.CreatedAt,
	}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func (s *councilService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCouncilRequest) (*dto.CouncilResponse, error) {
	// 1. Every seat must reference a catalog agent
	ids := req.AgentIds()
	customs := req.Customs()
	var seats [4]entity.CouncilSeat
	for i, id := range ids {
		if _, ok := s.catalog.GetByID(id); !ok {
			return nil, agentNotFound(id)
		}
		seats[i] = entity.CouncilSeat{AgentId: id, CustomPrompt: blankToNil(customs[i])}
	}

	c := &entity.Council{
		UserId:      userId,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Seats:       seats,
		Status:      entity.CouncilStatusActive,
	}

	// 2. Council and its opening SYSTEM message land together
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.WithinTx(ctx, func(tx unitofwork.UnitOfWork) error {
		if err := tx.CouncilRepository().Create(ctx, c); err != nil {
			return err
		}
		return tx.MessageRepository().Create(ctx, &entity.Message{
			CouncilId: c.Id,
			Role:      entity.MessageRoleSystem,
			Content:   fmt.Sprintf(createdMessageFormat, c.Name),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CouncilService", "Council created", map[string]interface{}{
		"council_id": c.Id.String(),
		"user_id":    userId.String(),
		"agents":     c.AgentIds(),
	})
	publishEvent(ctx, s.eventPublisher, s.logger, events.New(events.TypeCouncilCreated, map[string]interface{}{
		"council_id": c.Id.String(),
		"user_id":    userId.String(),
		"agent_ids":  c.AgentIds(),
	}))

	res := toCouncilResponse(c)
	return &res, nil
}

func (s *councilService) List(ctx context.Context, userId uuid.UUID, status string) ([]dto.CouncilResponse, error) {
	st := entity.CouncilStatusActive
	if status != "" {
		st = entity.CouncilStatus(strings.ToUpper(status))
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	councils, err := uow.CouncilRepository().FindAllWithMessageCount(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: string(st)},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CouncilResponse, len(councils))
	for i, c := range councils {
		out[i] = toCouncilResponse(c)
		count := c.MessageCount
		out[i].MessageCount = &count
	}
	return out, nil
}

func (s *councilService) Authorize(ctx context.Context, userId, councilId uuid.UUID) (*entity.Council, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.CouncilRepository().FindOne(ctx, specification.ByID{ID: councilId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCouncilNotFound
	}
	if c.UserId != userId {
		return nil, ErrCouncilForbidden
	}
	return c, nil
}

func (s *councilService) Get(ctx context.Context, userId, councilId uuid.UUID) (*dto.CouncilDetailResponse, error) {
	c, err := s.Authorize(ctx, userId, councilId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByCouncilID{CouncilID: councilId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CouncilDetailResponse{
		CouncilResponse: toCouncilResponse(c),
		Messages:        make([]dto.MessageResponse, len(messages)),
	}
	for i, m := range messages {
		res.Messages[i] = toMessageResponse(m)
	}
	return res, nil
}

func (s *councilService) Update(ctx context.Context, userId, councilId uuid.UUID, req *dto.UpdateCouncilRequest) (*dto.CouncilResponse, error) {
	c, err := s.Authorize(ctx, userId, councilId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Status != nil {
		st := entity.CouncilStatus(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		c.Status = st
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CouncilRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	res := toCouncilResponse(c)
	return &res, nil
}

// Delete is a soft delete; the transcript is kept.
func (s *councilService) Delete(ctx context.Context, userId, councilId uuid.UUID) error {
	deleted := string(entity.CouncilStatusDeleted)
	_, err := s.Update(ctx, userId, councilId, &dto.UpdateCouncilRequest{Status: &deleted})
	return err
}
