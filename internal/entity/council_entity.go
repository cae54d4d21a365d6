package entity

import (
	"time"

	"github.com/google/uuid"
)

type CouncilStatus string

const (
	CouncilStatusActive   CouncilStatus = "ACTIVE"
	CouncilStatusArchived CouncilStatus = "ARCHIVED"
	CouncilStatusDeleted  CouncilStatus = "DELETED"
)

func (s CouncilStatus) Valid() bool {
	switch s {
	case CouncilStatusActive, CouncilStatusArchived, CouncilStatusDeleted:
		return true
	}
	return false
}

type CouncilSeat struct {
	AgentId      string
	CustomPrompt *string
}

type Council struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description string
	// Seats are ordered; seat 0 replies first.
	Seats        [4]CouncilSeat
	Status       CouncilStatus
	MessageCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Council) AgentIds() []string {
	ids := make([]string, 0, len(c.Seats))
	for _, s := range c.Seats {
		ids = append(ids, s.AgentId)
	}
	return ids
}
