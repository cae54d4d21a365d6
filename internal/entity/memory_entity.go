package entity

import (
	"time"

	"github.com/google/uuid"
)

type Memory struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Content   string
	Embedding []float32
	Tags      []string
	CouncilId *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *Memory) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range m.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
