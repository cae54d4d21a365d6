// FILE: internal/dto/memory_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type StoreMemoryRequest struct {
	Content   string     `json:"content" validate:"required,min=10,max=5000"`
	Tags      []string   `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	CouncilId *uuid.UUID `json:"councilId"`
}

type UpdateMemoryRequest struct {
	Content string   `json:"content" validate:"required,min=10,max=5000"`
	Tags    []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
}

type SearchMemoryRequest struct {
	Query     string   `json:"query" validate:"required,min=1,max=1000"`
	Limit     *int     `json:"limit" validate:"omitempty,min=1,max=10"`
	Threshold *float64 `json:"threshold" validate:"omitempty,min=0,max=1"`
}

type MemoryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	CouncilId *uuid.UUID `json:"councilId"`
	Embedding []float32  `json:"embedding,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type MemorySearchResult struct {
	MemoryResponse
	Similarity float64 `json:"similarity"`
}

type MemoryStatsResponse struct {
	TotalMemories    int64 `json:"totalMemories"`
	MemoriesThisWeek int64 `json:"memoriesThisWeek"`
}
