package postgres

import (
	"context"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type requestEventRepository struct {
	db *gorm.DB
}

// NewRequestEventRepository is the constructor for requestEventRepository.
func NewRequestEventRepository(db *gorm.DB) repository.RequestEventRepository {
	return &requestEventRepository{db: db}
}

func (repo *requestEventRepository) Record(ctx context.Context, event *entity.RequestEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	eventM := &model.RequestEventModel{
		ID:             event.ID,
		MessageID:      event.MessageID,
		RequestID:      event.RequestID,
		AssetName:      event.AssetName,
		CompanyName:    event.CompanyName,
		RequesterEmail: event.RequesterEmail,
		FromStatus:     string(event.From),
		ToStatus:       string(event.To),
		ChangedBy:      event.ChangedBy,
		ChangedAt:      event.ChangedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEvent
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record request event")
	}

	return nil
}

func (repo *requestEventRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.RequestEvent, error) {
	var eventMs []*model.RequestEventModel
	err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("changed_at ASC").Order("id ASC").
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list request events")
	}

	events := make([]*entity.RequestEvent, 0, len(eventMs))
	for _, m := range eventMs {
		events = append(events, &entity.RequestEvent{
			ID:             m.ID,
			MessageID:      m.MessageID,
			RequestID:      m.RequestID,
			AssetName:      m.AssetName,
			CompanyName:    m.CompanyName,
			RequesterEmail: m.RequesterEmail,
			From:           entity.RequestStatus(m.FromStatus),
			To:             entity.RequestStatus(m.ToStatus),
			ChangedBy:      m.ChangedBy,
			ChangedAt:      m.ChangedAt,
		})
	}

	return events, nil
}
