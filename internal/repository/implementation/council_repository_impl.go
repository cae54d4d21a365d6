package implementation

import (
	"context"
	"errors"
	"time"

	"ai-council-be/internal/entity"
	"ai-council-be/internal/mapper"
	"ai-council-be/internal/model"
	"ai-council-be/internal/repository/contract"
	"ai-council-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const messageCountSelect = "councils.*, (SELECT COUNT(*) FROM messages WHERE messages.council_id = councils.id) AS message_count"

type CouncilRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CouncilMapper
}

func NewCouncilRepository(db *gorm.DB) contract.CouncilRepository {
	return &CouncilRepositoryImpl{
		db:     db,
		mapper: mapper.NewCouncilMapper(),
	}
}

func (r *CouncilRepositoryImpl) Create(ctx context.Context, council *entity.Council) error {
	if council.Id == uuid.Nil {
		council.Id = uuid.New()
	}
	m := r.mapper.ToModel(council)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*council = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouncilRepositoryImpl) Update(ctx context.Context, council *entity.Council) error {
	m := r.mapper.ToModel(council)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	count := council.MessageCount
	*council = *r.mapper.ToEntity(m)
	council.MessageCount = count
	return nil
}

func (r *CouncilRepositoryImpl) Touch(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Council{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", time.Now()).Error
}

func (r *CouncilRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Council, error) {
	var m model.Council
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CouncilRepositoryImpl) FindAllWithMessageCount(ctx context.Context, specs ...specification.Specification) ([]*entity.Council, error) {
	var rows []*model.CouncilWithCount
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Council{}).Select(messageCountSelect), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.Council, len(rows))
	for i, row := range rows {
		out[i] = r.mapper.WithCountToEntity(row)
	}
	return out, nil
}
