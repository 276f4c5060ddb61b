package postgres

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scopeQuery narrows a query to the pending claims of a (filer, target, order) triple.
func scopeQuery(db *gorm.DB, filerColumn, targetColumn string, scope repository.ClaimScope) *gorm.DB {
	db = db.Where(filerColumn+" = ? AND "+targetColumn+" = ?", scope.FiledBy, scope.FiledAgainst).
		Where("status = ?", "pending")
	if scope.OrderID == nil {
		return db.Where("order_id IS NULL")
	}

	return db.Where("order_id = ?", *scope.OrderID)
}

// disputeRepository implements the repository.DisputeRepository interface.
type disputeRepository struct {
	db *gorm.DB
}

// NewDisputeRepository is the constructor for disputeRepository.
func NewDisputeRepository(db *gorm.DB) repository.DisputeRepository {
	return &disputeRepository{db: db}
}

// Create persists a new pending dispute.
func (repo *disputeRepository) Create(ctx context.Context, dispute *entity.Dispute) error {
	disputeM := fromDisputeDomain(dispute)

	if err := repo.db.WithContext(ctx).Create(disputeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPendingDisputeExists
		}

		return errors.Wrap(err, "failed to create dispute")
	}

	*dispute = *toDisputeDomain(disputeM)

	return nil
}

// ExistsPending reports whether a pending dispute exists in the scope.
func (repo *disputeRepository) ExistsPending(ctx context.Context, scope repository.ClaimScope) (bool, error) {
	var count int64

	query := scopeQuery(repo.db.WithContext(ctx).Model(&model.DisputeModel{}), "filed_by", "filed_against", scope)
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check pending disputes")
	}

	return count > 0, nil
}

// FindByID retrieves a single dispute.
func (repo *disputeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dispute, error) {
	var disputeM model.DisputeModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&disputeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDisputeNotFound
		}

		return nil, errors.Wrap(err, "failed to find dispute by ID")
	}

	return toDisputeDomain(&disputeM), nil
}

// ListByFiler returns the consumer's disputes, newest first.
func (repo *disputeRepository) ListByFiler(ctx context.Context, consumerID uuid.UUID) ([]*entity.Dispute, error) {
	return repo.list(repo.db.WithContext(ctx).Where("filed_by = ?", consumerID))
}

// List returns every dispute, newest first.
func (repo *disputeRepository) List(ctx context.Context, status *entity.DisputeStatus) ([]*entity.Dispute, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return repo.list(query)
}

func (repo *disputeRepository) list(query *gorm.DB) ([]*entity.Dispute, error) {
	var disputeModels []*model.DisputeModel

	if err := query.Order("created_at DESC").Order("id DESC").Find(&disputeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list disputes")
	}

	disputes := make([]*entity.Dispute, 0, len(disputeModels))
	for _, disputeM := range disputeModels {
		disputes = append(disputes, toDisputeDomain(disputeM))
	}

	return disputes, nil
}

// Resolve settles a dispute only while it is still pending.
func (repo *disputeRepository) Resolve(ctx context.Context, resolution repository.DisputeResolution) (*entity.Dispute, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DisputeModel{}).
		Where("id = ? AND status = ?", resolution.ID, string(entity.DisputeStatusPending)).
		Updates(map[string]any{
			"status":      string(resolution.Status),
			"resolution":  resolution.Resolution,
			"resolved_by": resolution.AdminID,
			"resolved_at": resolution.ResolvedAt,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to resolve dispute")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, resolution.ID); err != nil {
			return nil, err
		}

		return nil, repository.ErrDisputeNotPending
	}

	return repo.FindByID(ctx, resolution.ID)
}

// DeleteByFiler removes a dispute filed by the consumer.
func (repo *disputeRepository) DeleteByFiler(ctx context.Context, id, consumerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND filed_by = ?", id, consumerID).
		Delete(&model.DisputeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete dispute")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDisputeNotFound
	}

	return nil
}

// refundRepository implements the repository.RefundRepository interface.
type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository is the constructor for refundRepository.
func NewRefundRepository(db *gorm.DB) repository.RefundRepository {
	return &refundRepository{db: db}
}

// Create persists a new pending refund request.
func (repo *refundRepository) Create(ctx context.Context, refund *entity.RefundRequest) error {
	refundM := fromRefundDomain(refund)

	if err := repo.db.WithContext(ctx).Create(refundM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPendingRefundExists
		}

		return errors.Wrap(err, "failed to create refund request")
	}

	*refund = *toRefundDomain(refundM)

	return nil
}

// ExistsPending reports whether a pending refund request exists in the scope.
func (repo *refundRepository) ExistsPending(ctx context.Context, scope repository.ClaimScope) (bool, error) {
	var count int64

	query := scopeQuery(repo.db.WithContext(ctx).Model(&model.RefundRequestModel{}), "requested_by", "requested_against", scope)
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check pending refund requests")
	}

	return count > 0, nil
}

// FindByID retrieves a single refund request.
func (repo *refundRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RefundRequest, error) {
	var refundM model.RefundRequestModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&refundM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefundNotFound
		}

		return nil, errors.Wrap(err, "failed to find refund request by ID")
	}

	return toRefundDomain(&refundM), nil
}

// ListByRequester returns the consumer's refund requests, newest first.
func (repo *refundRepository) ListByRequester(ctx context.Context, consumerID uuid.UUID) ([]*entity.RefundRequest, error) {
	return repo.list(repo.db.WithContext(ctx).Where("requested_by = ?", consumerID))
}

// List returns every refund request, newest first.
func (repo *refundRepository) List(ctx context.Context, status *entity.RefundStatus) ([]*entity.RefundRequest, error) {
	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	return repo.list(query)
}

func (repo *refundRepository) list(query *gorm.DB) ([]*entity.RefundRequest, error) {
	var refundModels []*model.RefundRequestModel

	if err := query.Order("created_at DESC").Order("id DESC").Find(&refundModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list refund requests")
	}

	refunds := make([]*entity.RefundRequest, 0, len(refundModels))
	for _, refundM := range refundModels {
		refunds = append(refunds, toRefundDomain(refundM))
	}

	return refunds, nil
}

// Resolve settles a refund request only while it is still pending.
func (repo *refundRepository) Resolve(ctx context.Context, resolution repository.RefundResolution) (*entity.RefundRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RefundRequestModel{}).
		Where("id = ? AND status = ?", resolution.ID, string(entity.RefundStatusPending)).
		Updates(map[string]any{
			"status":      string(resolution.Status),
			"resolved_by": resolution.AdminID,
			"resolved_at": resolution.ResolvedAt,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to resolve refund request")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, resolution.ID); err != nil {
			return nil, err
		}

		return nil, repository.ErrRefundNotPending
	}

	return repo.FindByID(ctx, resolution.ID)
}

// --- Mapper Functions ---

func fromDisputeDomain(d *entity.Dispute) *model.DisputeModel {
	return &model.DisputeModel{
		ID:           d.ID,
		Title:        d.Title,
		Details:      d.Details,
		FiledBy:      d.FiledBy,
		FiledAgainst: d.FiledAgainst,
		OrderID:      d.OrderID,
		Status:       string(d.Status),
		Resolution:   d.Resolution,
		ResolvedBy:   d.ResolvedBy,
		ResolvedAt:   d.ResolvedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDisputeDomain(m *model.DisputeModel) *entity.Dispute {
	return &entity.Dispute{
		ID:           m.ID,
		Title:        m.Title,
		Details:      m.Details,
		FiledBy:      m.FiledBy,
		FiledAgainst: m.FiledAgainst,
		OrderID:      m.OrderID,
		Status:       entity.DisputeStatus(m.Status),
		Resolution:   m.Resolution,
		ResolvedBy:   m.ResolvedBy,
		ResolvedAt:   m.ResolvedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromRefundDomain(r *entity.RefundRequest) *model.RefundRequestModel {
	return &model.RefundRequestModel{
		ID:               r.ID,
		RequestedBy:      r.RequestedBy,
		RequestedAgainst: r.RequestedAgainst,
		OrderID:          r.OrderID,
		Amount:           r.Amount,
		AmountType:       string(r.AmountType),
		Details:          r.Details,
		Status:           string(r.Status),
		ResolvedBy:       r.ResolvedBy,
		ResolvedAt:       r.ResolvedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toRefundDomain(m *model.RefundRequestModel) *entity.RefundRequest {
	return &entity.RefundRequest{
		ID:               m.ID,
		RequestedBy:      m.RequestedBy,
		RequestedAgainst: m.RequestedAgainst,
		OrderID:          m.OrderID,
		Amount:           m.Amount,
		AmountType:       entity.RefundAmountType(m.AmountType),
		Details:          m.Details,
		Status:           entity.RefundStatus(m.Status),
		ResolvedBy:       m.ResolvedBy,
		ResolvedAt:       m.ResolvedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
