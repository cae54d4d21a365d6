// FILE: internal/service/memory_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/repository/specification"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/pkg/embedding"
	"ai-council-be/pkg/events"
	"ai-council-be/pkg/vector"

	"github.com/google/uuid"
)

const (
	DefaultSearchLimit     = 5
	MaxSearchLimit         = 10
	DefaultSearchThreshold = 0.7
	statsWindow            = 7 * 24 * time.Hour
)

type IMemoryService interface {
	Store(ctx context.Context, userId uuid.UUID, req *dto.StoreMemoryRequest) (*dto.MemoryResponse, error)
	List(ctx context.Context, userId uuid.UUID, tags []string) ([]dto.MemoryResponse, error)
	Get(ctx context.Context, userId, memoryId uuid.UUID) (*dto.MemoryResponse, error)
	Update(ctx context.Context, userId, memoryId uuid.UUID, req *dto.UpdateMemoryRequest) (*dto.MemoryResponse, error)
	Delete(ctx context.Context, userId, memoryId uuid.UUID) error
	Search(ctx context.Context, userId uuid.UUID, req *dto.SearchMemoryRequest) ([]dto.MemorySearchResult, error)
	Stats(ctx context.Context, userId uuid.UUID) (*dto.MemoryStatsResponse, error)
}

type memoryService struct {
	uowFactory     unitofwork.RepositoryFactory
	embedder       embedding.EmbeddingProvider
	eventPublisher events.Publisher
	now            func() time.Time
	logger         logger.ILogger
}

func NewMemoryService(
	uowFactory unitofwork.RepositoryFactory,
	embedder embedding.EmbeddingProvider,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IMemoryService {
	return &memoryService{
		uowFactory:     uowFactory,
		embedder:       embedder,
		eventPublisher: eventPublisher,
		now:            time.Now,
		logger:         log,
	}
}

func toMemoryResponse(m *entity.Memory) dto.MemoryResponse {
	return dto.MemoryResponse{
		Id:        m.Id,
		Content:   m.Content,
		Tags:      m.Tags,
		CouncilId: m.CouncilId,
		Embedding: m.Embedding,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// embed rejects vectors whose length differs from the provider's declared dimension.
func (s *memoryService) embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := s.embedder.Generate(ctx, text)
	if err != nil {
		s.logger.Error("MemoryService", "Embedding generation failed", map[string]interface{}{
			"provider": s.embedder.Name(),
			"error":    err,
		})
		return nil, err
	}
	if want := s.embedder.Dimensions(); want > 0 && len(vec) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrEmbeddingDimension, len(vec), want)
	}
	return vec, nil
}

func (s *memoryService) Store(ctx context.Context, userId uuid.UUID, req *dto.StoreMemoryRequest) (*dto.MemoryResponse, error) {
	content := strings.TrimSpace(req.Content)
	vec, err := s.embed(ctx, content)
	if err != nil {
		return nil, err
	}

	m := &entity.Memory{
		UserId:    userId,
		Content:   content,
		Embedding: vec,
		Tags:      cleanTags(req.Tags),
		CouncilId: req.CouncilId,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MemoryRepository().Create(ctx, m); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.New(events.TypeMemoryStored, map[string]interface{}{
		"memory_id": m.Id.String(),
		"user_id":   userId.String(),
		"tags":      m.Tags,
	}))

	res := toMemoryResponse(m)
	return &res, nil
}

// owned returns the memory only if userId owns it; forbidden is the error for a foreign row.
func (s *memoryService) owned(ctx context.Context, uow unitofwork.UnitOfWork, userId, memoryId uuid.UUID, forbidden error) (*entity.Memory, error) {
	m, err := uow.MemoryRepository().FindOne(ctx, specification.ByID{ID: memoryId})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemoryNotFound
	}
	if m.UserId != userId {
		s.logger.Warn("MemoryService", "Cross-user memory access rejected", map[string]interface{}{
			"memory_id": memoryId.String(),
			"user_id":   userId.String(),
		})
		return nil, forbidden
	}
	return m, nil
}

func (s *memoryService) List(ctx context.Context, userId uuid.UUID, tags []string) ([]dto.MemoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.MemoryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	tags = cleanTags(tags)
	out := make([]dto.MemoryResponse, 0, len(rows))
	for _, m := range rows {
		if len(tags) > 0 && !m.HasAnyTag(tags) {
			continue
		}
		out = append(out, toMemoryResponse(m))
	}
	return out, nil
}

func (s *memoryService) Get(ctx context.Context, userId, memoryId uuid.UUID) (*dto.MemoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := s.owned(ctx, uow, userId, memoryId, ErrMemoryForbidden)
	if err != nil {
		return nil, err
	}
	res := toMemoryResponse(m)
	return &res, nil
}

func (s *memoryService) Update(ctx context.Context, userId, memoryId uuid.UUID, req *dto.UpdateMemoryRequest) (*dto.MemoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := s.owned(ctx, uow, userId, memoryId, ErrMemoryForbidden)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	vec, err := s.embed(ctx, content)
	if err != nil {
		return nil, err
	}
	m.Content = content
	m.Embedding = vec
	// Tags are replaced only when the request carries them.
	if req.Tags != nil {
		m.Tags = cleanTags(req.Tags)
	}

	if err := uow.MemoryRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	res := toMemoryResponse(m)
	return &res, nil
}

func (s *memoryService) Delete(ctx context.Context, userId, memoryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.owned(ctx, uow, userId, memoryId, ErrMemoryDeleteForbidden); err != nil {
		return err
	}
	return uow.MemoryRepository().Delete(ctx, memoryId)
}

// Search is a linear scan over a snapshot of the caller's own memories.
func (s *memoryService) Search(ctx context.Context, userId uuid.UUID, req *dto.SearchMemoryRequest) ([]dto.MemorySearchResult, error) {
	limit := DefaultSearchLimit
	if req.Limit != nil && *req.Limit > 0 {
		limit = *req.Limit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	threshold := DefaultSearchThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	query, err := s.embed(ctx, strings.TrimSpace(req.Query))
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.MemoryRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	ranked, err := vector.Rank(rows, func(m *entity.Memory) []float32 { return m.Embedding }, query, threshold, limit)
	if err != nil {
		s.logger.Error("MemoryService", "Memory search failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err,
		})
		return nil, err
	}

	out := make([]dto.MemorySearchResult, len(ranked))
	for i, r := range ranked {
		out[i] = dto.MemorySearchResult{MemoryResponse: toMemoryResponse(r.Item), Similarity: r.Similarity}
	}
	return out, nil
}

func (s *memoryService) Stats(ctx context.Context, userId uuid.UUID) (*dto.MemoryStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner := specification.UserOwnedBy{UserID: userId}

	total, err := uow.MemoryRepository().Count(ctx, owner)
	if err != nil {
		return nil, err
	}
	recent, err := uow.MemoryRepository().Count(ctx, owner, specification.CreatedSince{Since: s.now().Add(-statsWindow)})
	if err != nil {
		return nil, err
	}
	return &dto.MemoryStatsResponse{TotalMemories: total, MemoriesThisWeek: recent}, nil
}
