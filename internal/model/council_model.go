package model

import (
	"time"

	"github.com/google/uuid"
)

type Council struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text;not null"`
	Agent1Id     string    `gorm:"type:varchar(64);not null"`
	Agent2Id     string    `gorm:"type:varchar(64);not null"`
	Agent3Id     string    `gorm:"type:varchar(64);not null"`
	Agent4Id     string    `gorm:"type:varchar(64);not null"`
	Agent1Custom *string   `gorm:"type:text"`
	Agent2Custom *string   `gorm:"type:text"`
	Agent3Custom *string   `gorm:"type:text"`
	Agent4Custom *string   `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Council) TableName() string {
	return "councils"
}

// CouncilWithCount is a read model for listings.
type CouncilWithCount struct {
	Council
	MessageCount int64
}
