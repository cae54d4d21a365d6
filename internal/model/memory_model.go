package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Memory struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Content   string                      `gorm:"type:text;not null"`
	Embedding pgvector.Vector             `gorm:"type:vector"` // dimension follows the configured embedding model
	Tags      datatypes.JSONSlice[string] `gorm:"not null"`
	CouncilId *uuid.UUID                  `gorm:"type:uuid;index"`
	CreatedAt time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
}

func (Memory) TableName() string {
	return "memories"
}
