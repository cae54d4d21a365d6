package usage

import (
	"fmt"
	"sync"
	"time"

	"ai-council-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

type Tier string

const (
	TierFree     Tier = "FREE"
	TierPro      Tier = "PRO"
	TierBusiness Tier = "BUSINESS"
)

type EndpointCategory string

const (
	EndpointChat           EndpointCategory = "chat"
	EndpointRecommendation EndpointCategory = "recommendation"
	EndpointTest           EndpointCategory = "test"
)

// hourlyLimits are requests per wall-clock hour.
var hourlyLimits = map[Tier]int{
	TierFree:     20,
	TierPro:      100,
	TierBusiness: 500,
}

func LimitFor(tier Tier) int {
	if l, ok := hourlyLimits[tier]; ok {
		return l
	}
	return hourlyLimits[TierFree]
}

type Record struct {
	UserId        string           `json:"userId"`
	Model         string           `json:"model"`
	TokensUsed    int              `json:"tokensUsed"`
	EstimatedCost float64          `json:"estimatedCost"`
	Timestamp     time.Time        `json:"timestamp"`
	Endpoint      EndpointCategory `json:"endpointType"`
}

type LimitCheck struct {
	Allowed          bool   `json:"allowed"`
	RequestsThisHour int    `json:"requestsThisHour"`
	Limit            int    `json:"limit"`
	Reason           string `json:"reason,omitempty"`
}

type Stats struct {
	TotalRequests    int        `json:"totalRequests"`
	TotalTokens      int        `json:"totalTokens"`
	TotalCost        float64    `json:"totalCost"`
	RequestsThisHour int        `json:"requestsThisHour"`
	LastRequestTime  *time.Time `json:"lastRequest"`
}

type SystemStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalRequests int     `json:"totalRequests"`
	TotalTokens   int     `json:"totalTokens"`
	TotalCost     float64 `json:"totalCost"`
}

// Tracker keeps usage in process memory only; a restart resets everything.
//
// Hour buckets are keyed by the local hour-of-day, not a sliding window, so
// a user can spend a full quota at 10:59 and another at 11:00.
type Tracker struct {
	mu      sync.Mutex
	records map[string][]Record
	buckets *cache.Cache
	now     func() time.Time
	logger  logger.ILogger
}

type Option func(*Tracker)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func NewTracker(log logger.ILogger, opts ...Option) *Tracker {
	t := &Tracker{
		records: make(map[string][]Record),
		// A bucket outlives its hour by at most one hour, so yesterday's count can never be read.
		buckets: cache.New(time.Hour, 10*time.Minute),
		now:     time.Now,
		logger:  log,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) hourKey(userId string) string {
	return fmt.Sprintf("%s-%d", userId, t.now().Hour())
}

func (t *Tracker) requestsThisHour(userId string) int {
	if v, found := t.buckets.Get(t.hourKey(userId)); found {
		return v.(int)
	}
	return 0
}

// Record appends a usage entry and bumps the caller's current hour bucket.
func (t *Tracker) Record(userId, model string, tokens int, cost float64, endpoint EndpointCategory) {
	t.mu.Lock()
	t.records[userId] = append(t.records[userId], Record{
		UserId:        userId,
		Model:         model,
		TokensUsed:    tokens,
		EstimatedCost: cost,
		Timestamp:     t.now(),
		Endpoint:      endpoint,
	})
	key := t.hourKey(userId)
	t.buckets.Set(key, t.requestsThisHour(userId)+1, cache.DefaultExpiration)
	t.mu.Unlock()

	t.logger.Debug("UsageTracker", "Usage recorded", map[string]interface{}{
		"user_id":  userId,
		"model":    model,
		"tokens":   tokens,
		"cost":     fmt.Sprintf("%.4f", cost),
		"endpoint": endpoint,
	})
}

// CheckLimit disallows once the current hour's count reaches the tier ceiling.
func (t *Tracker) CheckLimit(userId string, tier Tier) LimitCheck {
	limit := LimitFor(tier)

	t.mu.Lock()
	count := t.requestsThisHour(userId)
	t.mu.Unlock()

	if count >= limit {
		return LimitCheck{
			Allowed:          false,
			RequestsThisHour: count,
			Limit:            limit,
			Reason: fmt.Sprintf("Rate limit exceeded. You have %d requests this hour. Limit: %d requests/hour for %s tier.",
				count, limit, tier),
		}
	}
	return LimitCheck{Allowed: true, RequestsThisHour: count, Limit: limit}
}

func (t *Tracker) StatsFor(userId string) Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	records := t.records[userId]
	stats := Stats{
		TotalRequests:    len(records),
		RequestsThisHour: t.requestsThisHour(userId),
	}
	for _, r := range records {
		stats.TotalTokens += r.TokensUsed
		stats.TotalCost += r.EstimatedCost
	}
	if len(records) > 0 {
		last := records[len(records)-1].Timestamp
		stats.LastRequestTime = &last
	}
	return stats
}

// Records returns a copy of a user's raw entries.
func (t *Tracker) Records(userId string) []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records[userId]))
	copy(out, t.records[userId])
	return out
}

func (t *Tracker) SystemStats() SystemStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := SystemStats{TotalUsers: len(t.records)}
	for _, records := range t.records {
		stats.TotalRequests += len(records)
		for _, r := range records {
			stats.TotalTokens += r.TokensUsed
			stats.TotalCost += r.EstimatedCost
		}
	}
	return stats
}

// ResetHourly clears only the rate-limit buckets.
func (t *Tracker) ResetHourly() {
	t.buckets.Flush()
	t.logger.Info("UsageTracker", "Hourly request counters reset", nil)
}

// Reset drops all records and buckets.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.records = make(map[string][]Record)
	t.mu.Unlock()
	t.buckets.Flush()
	t.logger.Info("UsageTracker", "All usage data cleared", nil)
}
