// FILE: internal/dto/council_dto.go
package dto

import (
	"time"

	"ai-council-be/pkg/council"

	"github.com/google/uuid"
)

type CreateCouncilRequest struct {
	Name         string  `json:"name" validate:"required,notblank,max=100"`
	Description  string  `json:"description" validate:"required,min=20,max=500"`
	Agent1Id     string  `json:"agent1Id" validate:"required"`
	Agent2Id     string  `json:"agent2Id" validate:"required"`
	Agent3Id     string  `json:"agent3Id" validate:"required"`
	Agent4Id     string  `json:"agent4Id" validate:"required"`
	Agent1Custom *string `json:"agent1Custom" validate:"omitempty,max=4000"`
	Agent2Custom *string `json:"agent2Custom" validate:"omitempty,max=4000"`
	Agent3Custom *string `json:"agent3Custom" validate:"omitempty,max=4000"`
	Agent4Custom *string `json:"agent4Custom" validate:"omitempty,max=4000"`
}

func (r *CreateCouncilRequest) AgentIds() [4]string {
	return [4]string{r.Agent1Id, r.Agent2Id, r.Agent3Id, r.Agent4Id}
}

func (r *CreateCouncilRequest) Customs() [4]*string {
	return [4]*string{r.Agent1Custom, r.Agent2Custom, r.Agent3Custom, r.Agent4Custom}
}

type UpdateCouncilRequest struct {
	Name   *string `json:"name" validate:"omitempty,notblank,max=100"`
	Status *string `json:"status" validate:"omitempty,oneof=ACTIVE ARCHIVED DELETED"`
}

type CouncilResponse struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Agent1Id     string    `json:"agent1Id"`
	Agent2Id     string    `json:"agent2Id"`
	Agent3Id     string    `json:"agent3Id"`
	Agent4Id     string    `json:"agent4Id"`
	Agent1Custom *string   `json:"agent1Custom"`
	Agent2Custom *string   `json:"agent2Custom"`
	Agent3Custom *string   `json:"agent3Custom"`
	Agent4Custom *string   `json:"agent4Custom"`
	Status       string    `json:"status"`
	MessageCount *int64    `json:"messageCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CouncilDetailResponse struct {
	CouncilResponse
	Messages []MessageResponse `json:"messages"`
}

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	CouncilId  uuid.UUID `json:"councilId"`
	Role       string    `json:"role"`
	AgentId    *string   `json:"agentId"`
	Content    string    `json:"content"`
	TokensUsed *int      `json:"tokensUsed"`
	Cost       *float64  `json:"cost"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// UserMessageResponse is the persisted user turn as echoed to clients.
type UserMessageResponse struct {
	MessageId string    `json:"messageId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type TurnResponse struct {
	UserMessage UserMessageResponse     `json:"userMessage"`
	Responses   []council.AgentResponse `json:"responses"`
}
