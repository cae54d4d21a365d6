package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	TierFree     SubscriptionTier = "FREE"
	TierPro      SubscriptionTier = "PRO"
	TierBusiness SubscriptionTier = "BUSINESS"
)

type User struct {
	Id               uuid.UUID
	Email            string
	PasswordHash     string
	Name             *string
	SubscriptionTier SubscriptionTier
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
