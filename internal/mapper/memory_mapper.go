package mapper

import (
	"ai-council-be/internal/entity"
	"ai-council-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type MemoryMapper struct{}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{}
}

func (m *MemoryMapper) ToEntity(mem *model.Memory) *entity.Memory {
	if mem == nil {
		return nil
	}
	tags := []string(mem.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &entity.Memory{
		Id:        mem.Id,
		UserId:    mem.UserId,
		Content:   mem.Content,
		Embedding: mem.Embedding.Slice(),
		Tags:      tags,
		CouncilId: mem.CouncilId,
		CreatedAt: mem.CreatedAt,
		UpdatedAt: mem.UpdatedAt,
	}
}

func (m *MemoryMapper) ToModel(mem *entity.Memory) *model.Memory {
	if mem == nil {
		return nil
	}
	tags := mem.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Memory{
		Id:        mem.Id,
		UserId:    mem.UserId,
		Content:   mem.Content,
		Embedding: pgvector.NewVector(mem.Embedding),
		Tags:      datatypes.JSONSlice[string](tags),
		CouncilId: mem.CouncilId,
		CreatedAt: mem.CreatedAt,
		UpdatedAt: mem.UpdatedAt,
	}
}

func (m *MemoryMapper) ToEntities(mems []*model.Memory) []*entity.Memory {
	entities := make([]*entity.Memory, len(mems))
	for i, mem := range mems {
		entities[i] = m.ToEntity(mem)
	}
	return entities
}
