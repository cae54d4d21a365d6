package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser   MessageRole = "USER"
	MessageRoleAgent  MessageRole = "AGENT"
	MessageRoleSystem MessageRole = "SYSTEM"
)

// Message is append-only. AgentId, TokensUsed and Cost are set only for AGENT rows.
type Message struct {
	Id         uuid.UUID
	CouncilId  uuid.UUID
	Role       MessageRole
	AgentId    *string
	Content    string
	TokensUsed *int
	Cost       *float64
	CreatedAt  time.Time
}
