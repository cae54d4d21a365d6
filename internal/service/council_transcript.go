package service

import (
	"context"

	"ai-council-be/internal/entity"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/pkg/council"

	"github.com/google/uuid"
)

// councilTranscript stores turn messages through the repositories and bumps the
// council's updated_at after each append.
type councilTranscript struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCouncilTranscript(uowFactory unitofwork.RepositoryFactory) council.Transcript {
	return &councilTranscript{uowFactory: uowFactory}
}

func (t *councilTranscript) RecentMessages(ctx context.Context, councilID uuid.UUID, limit int) ([]council.HistoryMessage, error) {
	uow := t.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.MessageRepository().FindRecent(ctx, councilID, limit)
	if err != nil {
		return nil, err
	}

	history := make([]council.HistoryMessage, len(rows))
	for i, m := range rows {
		h := council.HistoryMessage{Role: string(m.Role), Content: m.Content}
		if m.AgentId != nil {
			h.AgentID = *m.AgentId
		}
		history[i] = h
	}
	return history, nil
}

func (t *councilTranscript) append(ctx context.Context, msg *entity.Message) (*council.StoredMessage, error) {
	uow := t.uowFactory.NewUnitOfWork(ctx)
	err := uow.WithinTx(ctx, func(tx unitofwork.UnitOfWork) error {
		if err := tx.MessageRepository().Create(ctx, msg); err != nil {
			return err
		}
		return tx.CouncilRepository().Touch(ctx, msg.CouncilId)
	})
	if err != nil {
		return nil, err
	}
	return &council.StoredMessage{ID: msg.Id, Content: msg.Content, CreatedAt: msg.CreatedAt}, nil
}

func (t *councilTranscript) AppendUserMessage(ctx context.Context, councilID uuid.UUID, content string) (*council.StoredMessage, error) {
	return t.append(ctx, &entity.Message{
		CouncilId: councilID,
		Role:      entity.MessageRoleUser,
		Content:   content,
	})
}

func (t *councilTranscript) AppendAgentReply(ctx context.Context, councilID uuid.UUID, reply council.AgentReply) (*council.StoredMessage, error) {
	agentID := reply.AgentID
	tokens := reply.TokensUsed
	cost := reply.Cost
	return t.append(ctx, &entity.Message{
		CouncilId:  councilID,
		Role:       entity.MessageRoleAgent,
		AgentId:    &agentID,
		Content:    reply.Content,
		TokensUsed: &tokens,
		Cost:       &cost,
	})
}
