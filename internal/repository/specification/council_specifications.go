package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCouncilID struct {
	CouncilID uuid.UUID
}

func (s ByCouncilID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("council_id = ?", s.CouncilID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
