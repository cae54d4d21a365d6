package mapper

import (
	"ai-council-be/internal/entity"
	"ai-council-be/internal/model"
)

type CouncilMapper struct{}

func NewCouncilMapper() *CouncilMapper {
	return &CouncilMapper{}
}

func (m *CouncilMapper) ToEntity(c *model.Council) *entity.Council {
	if c == nil {
		return nil
	}
	return &entity.Council{
		Id:          c.Id,
		UserId:      c.UserId,
		Name:        c.Name,
		Description: c.Description,
		Seats: [4]entity.CouncilSeat{
			{AgentId: c.Agent1Id, CustomPrompt: c.Agent1Custom},
			{AgentId: c.Agent2Id, CustomPrompt: c.Agent2Custom},
			{AgentId: c.Agent3Id, CustomPrompt: c.Agent3Custom},
			{AgentId: c.Agent4Id, CustomPrompt: c.Agent4Custom},
		},
		Status:    entity.CouncilStatus(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CouncilMapper) ToModel(c *entity.Council) *model.Council {
	if c == nil {
		return nil
	}
	status := string(c.Status)
	if status == "" {
		status = string(entity.CouncilStatusActive)
	}
	return &model.Council{
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
		Status:       status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *CouncilMapper) WithCountToEntity(c *model.CouncilWithCount) *entity.Council {
	if c == nil {
		return nil
	}
	e := m.ToEntity(&c.Council)
	e.MessageCount = c.MessageCount
	return e
}

func (m *CouncilMapper) ToEntities(councils []*model.Council) []*entity.Council {
	entities := make([]*entity.Council, len(councils))
	for i, c := range councils {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
