package mapper

import (
	"ai-council-be/internal/entity"
	"ai-council-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:         msg.Id,
		CouncilId:  msg.CouncilId,
		Role:       entity.MessageRole(msg.Role),
		AgentId:    msg.AgentId,
		Content:    msg.Content,
		TokensUsed: msg.TokensUsed,
		Cost:       msg.Cost,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:         msg.Id,
		CouncilId:  msg.CouncilId,
		Role:       string(msg.Role),
		AgentId:    msg.AgentId,
		Content:    msg.Content,
		TokensUsed: msg.TokensUsed,
		Cost:       msg.Cost,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
