package model

import (
	"time"

	"github.com/google/uuid"
)

// Message rows are append-only.
type Message struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouncilId  uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_council_created,priority:1"`
	Role       string    `gorm:"type:varchar(10);not null"`
	AgentId    *string   `gorm:"type:varchar(64)"`
	Content    string    `gorm:"type:text;not null"`
	TokensUsed *int
	Cost       *float64
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_messages_council_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}
