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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// partyColumn returns the column that scopes orders to the party, or "" for roles
// that never participate in an order.
func partyColumn(party entity.PartyRef) string {
	switch party.Kind {
	case entity.RoleConsumer:
		return "consumer_id"
	case entity.RoleServiceProvider:
		return "provider_id"
	default:
		return ""
	}
}

// Create persists a new order; ux_service_orders_active rejects a second active order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.ServiceOrder) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveOrderExists
		}

		return errors.Wrap(err, "failed to create order")
	}

	*order = *toOrderDomain(orderM)

	return nil
}

// FindActive returns the pending or accepted order of the triple.
func (repo *orderRepository) FindActive(ctx context.Context, consumerID, providerID, servicePostID uuid.UUID) (*entity.ServiceOrder, error) {
	var orderM model.ServiceOrderModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ? AND provider_id = ? AND service_post_id = ?", consumerID, providerID, servicePostID).
		Where("status IN ?", entity.ActiveOrderStatuses()).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find active order")
	}

	return toOrderDomain(&orderM), nil
}

// FindForParty retrieves an order only if the party participates in it.
func (repo *orderRepository) FindForParty(ctx context.Context, id uuid.UUID, party entity.PartyRef) (*entity.ServiceOrder, error) {
	column := partyColumn(party)
	if column == "" {
		return nil, repository.ErrOrderNotFound
	}

	var orderM model.ServiceOrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where(column+" = ?", party.ID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListForParty returns the party's orders, newest first.
func (repo *orderRepository) ListForParty(ctx context.Context, party entity.PartyRef, statuses []entity.OrderStatus) ([]*entity.ServiceOrder, error) {
	column := partyColumn(party)
	if column == "" {
		return []*entity.ServiceOrder{}, nil
	}

	query := repo.db.WithContext(ctx).
		Where(column+" = ?", party.ID).
		Order("created_at DESC").
		Order("id DESC")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var orderModels []*model.ServiceOrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.ServiceOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Transition is a compare-and-set on (id, party, status). Two concurrent transitions
// from the same status cannot both succeed.
func (repo *orderRepository) Transition(ctx context.Context, params repository.OrderTransitionParams) (*entity.ServiceOrder, error) {
	column := partyColumn(params.Party)
	if column == "" {
		return nil, repository.ErrOrderNotFound
	}

	values := map[string]any{
		"status":     string(params.To),
		"updated_at": time.Now(),
	}
	if params.DeliverySchedule != nil {
		values["delivery_schedule"] = *params.DeliverySchedule
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceOrderModel{}).
		Where("id = ? AND status = ?", params.OrderID, string(params.From)).
		Where(column+" = ?", params.Party.ID).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrActiveOrderExists
		}

		return nil, errors.Wrap(result.Error, "failed to transition order")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindForParty(ctx, params.OrderID, params.Party); err != nil {
			return nil, err
		}

		return nil, repository.ErrOrderStatusMismatch
	}

	return repo.FindForParty(ctx, params.OrderID, params.Party)
}

// DeleteByServicePost removes every order placed on the post along with the disputes and
// refund requests linked to those orders. Unlinking them instead would collapse their scope
// onto the order-less one and collide on the pending-claim indexes.
func (repo *orderRepository) DeleteByServicePost(ctx context.Context, servicePostID uuid.UUID) (int64, error) {
	db := repo.db.WithContext(ctx)
	orderIDs := db.Model(&model.ServiceOrderModel{}).Select("id").Where("service_post_id = ?", servicePostID)

	if err := db.Where("order_id IN (?)", orderIDs).Delete(&model.DisputeModel{}).Error; err != nil {
		return 0, errors.Wrap(err, "failed to delete disputes of service post orders")
	}
	if err := db.Where("order_id IN (?)", orderIDs).Delete(&model.RefundRequestModel{}).Error; err != nil {
		return 0, errors.Wrap(err, "failed to delete refund requests of service post orders")
	}

	result := db.Where("service_post_id = ?", servicePostID).Delete(&model.ServiceOrderModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete orders of service post")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func fromOrderDomain(o *entity.ServiceOrder) *model.ServiceOrderModel {
	return &model.ServiceOrderModel{
		ID:               o.ID,
		ConsumerID:       o.ConsumerID,
		ProviderID:       o.ProviderID,
		ServicePostID:    o.ServicePostID,
		DeliverySchedule: o.DeliverySchedule,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toOrderDomain(m *model.ServiceOrderModel) *entity.ServiceOrder {
	return &entity.ServiceOrder{
		ID:               m.ID,
		ConsumerID:       m.ConsumerID,
		ProviderID:       m.ProviderID,
		ServicePostID:    m.ServicePostID,
		DeliverySchedule: m.DeliverySchedule,
		Status:           entity.OrderStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
