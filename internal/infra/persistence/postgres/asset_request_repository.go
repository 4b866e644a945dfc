package postgres

import (
	"context"
	"time"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetRequestRepository implements the domain.AssetRequestRepository interface using GORM.
type assetRequestRepository struct {
	db *gorm.DB
}

// NewAssetRequestRepository is the constructor for assetRequestRepository.
func NewAssetRequestRepository(db *gorm.DB) repository.AssetRequestRepository {
	return &assetRequestRepository{db: db}
}

// FindByID retrieves a request by its unique ID.
func (repo *assetRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error) {
	var requestM model.AssetRequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset request by id")
	}

	return toAssetRequestDomain(&requestM), nil
}

// List returns requests in scope matching query, newest first.
func (repo *assetRequestRepository) List(ctx context.Context, scope repository.RequestScope, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	tx := repo.db.WithContext(ctx)

	if scope.RequesterEmail != "" {
		tx = tx.Where("requester_email = ?", scope.RequesterEmail)
	}
	if scope.CompanyName != "" {
		tx = tx.Where("company_name = ?", scope.CompanyName)
	}
	if !scope.Since.IsZero() {
		tx = tx.Where("request_date >= ?", scope.Since)
	}

	if pattern := likePattern(query.Search); pattern != "" {
		tx = tx.Where("(LOWER(asset_name) LIKE ?"+likeEscape+
			" OR LOWER(requester_name) LIKE ?"+likeEscape+
			" OR LOWER(requester_email) LIKE ?"+likeEscape+")",
			pattern, pattern, pattern)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", string(query.Status))
	}
	if query.Type != "" {
		tx = tx.Where("asset_type = ?", string(query.Type))
	}

	tx = tx.Order("request_date DESC").Order("id ASC")
	if scope.Limit > 0 {
		tx = tx.Limit(scope.Limit)
	}

	var requestMs []*model.AssetRequestModel
	if err := tx.Find(&requestMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list asset requests")
	}

	requests := make([]*entity.AssetRequest, 0, len(requestMs))
	for _, m := range requestMs {
		requests = append(requests, toAssetRequestDomain(m))
	}

	return requests, nil
}

// Create persists a new request.
func (repo *assetRequestRepository) Create(ctx context.Context, request *entity.AssetRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromAssetRequestDomain(request)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset request")
	}

	return nil
}

// UpdateStatus moves a request from one status to another; the from status acts as an optimistic lock.
// A nil approvalDate leaves the stored approval date untouched.
func (repo *assetRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus, approvalDate *time.Time) error {
	updates := map[string]any{"status": string(to)}
	if approvalDate != nil {
		updates["approval_date"] = *approvalDate
	}

	result := repo.db.WithContext(ctx).Model(&model.AssetRequestModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update asset request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// CountByType counts a company's requests per asset type.
func (repo *assetRequestRepository) CountByType(ctx context.Context, company string) (map[entity.ProductType]int, error) {
	var rows []struct {
		AssetType string
		Total     int
	}

	err := repo.db.WithContext(ctx).Model(&model.AssetRequestModel{}).
		Select("asset_type, COUNT(*) AS total").
		Where("company_name = ?", company).
		Group("asset_type").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count asset requests by type")
	}

	counts := make(map[entity.ProductType]int, len(rows))
	for _, row := range rows {
		counts[entity.ProductType(row.AssetType)] = row.Total
	}

	return counts, nil
}

// TopRequested returns the most requested asset names of a company, ties broken by name.
func (repo *assetRequestRepository) TopRequested(ctx context.Context, company string, limit int) ([]string, error) {
	var rows []struct {
		AssetName string
		Total     int
	}

	err := repo.db.WithContext(ctx).Model(&model.AssetRequestModel{}).
		Select("asset_name, COUNT(*) AS total").
		Where("company_name = ?", company).
		Group("asset_name").
		Order("total DESC").Order("asset_name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top requested assets")
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.AssetName)
	}

	return names, nil
}

func toAssetRequestDomain(m *model.AssetRequestModel) *entity.AssetRequest {
	return &entity.AssetRequest{
		ID:              m.ID,
		AssetID:         m.AssetID,
		AssetName:       m.AssetName,
		AssetType:       entity.ProductType(m.AssetType),
		RequestDate:     m.RequestDate,
		ApprovalDate:    m.ApprovalDate,
		Status:          entity.RequestStatus(m.Status),
		RequesterName:   m.RequesterName,
		RequesterEmail:  m.RequesterEmail,
		CompanyName:     m.CompanyName,
		AdditionalNotes: m.AdditionalNotes,
	}
}

func fromAssetRequestDomain(r *entity.AssetRequest) *model.AssetRequestModel {
	return &model.AssetRequestModel{
		ID:              r.ID,
		AssetID:         r.AssetID,
		AssetName:       r.AssetName,
		AssetType:       string(r.AssetType),
		RequestDate:     r.RequestDate,
		ApprovalDate:    r.ApprovalDate,
		Status:          string(r.Status),
		RequesterName:   r.RequesterName,
		RequesterEmail:  r.RequesterEmail,
		CompanyName:     r.CompanyName,
		AdditionalNotes: r.AdditionalNotes,
	}
}
