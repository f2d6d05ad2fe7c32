package shipment

import (
	"context"
	"errors"
	"strings"

	"logistics-requests/errs"
	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/access"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the shipment_requests store.
type Repository interface {
	Insert(ctx context.Context, tx *gorm.DB, r *shipmentModel.ShipmentRequest) error
	Save(ctx context.Context, tx *gorm.DB, r *shipmentModel.ShipmentRequest) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*shipmentModel.ShipmentRequest, error)
	// Lock loads a row with SELECT ... FOR UPDATE inside tx.
	Lock(ctx context.Context, tx *gorm.DB, id uint) (*shipmentModel.ShipmentRequest, error)
	FindByNumber(ctx context.Context, number string) (*shipmentModel.ShipmentRequest, error)
	FindByPhone(ctx context.Context, phone string, limit int) ([]shipmentModel.ShipmentRequest, error)
	List(ctx context.Context, actor access.Actor, f Filter) ([]shipmentModel.ShipmentRequest, int64, error)
	// ListForStats loads only the columns Aggregate reads.
	ListForStats(ctx context.Context, actor access.Actor, f Filter) ([]shipmentModel.ShipmentRequest, error)
	AddEvent(ctx context.Context, tx *gorm.DB, ev *shipmentModel.StatusEvent) error
	History(ctx context.Context, id uint) ([]shipmentModel.StatusEvent, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *GormRepository) Insert(ctx context.Context, tx *gorm.DB, req *shipmentModel.ShipmentRequest) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(req).Error
}

func (r *GormRepository) Save(ctx context.Context, tx *gorm.DB, req *shipmentModel.ShipmentRequest) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Save(req).Error
}

func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&shipmentModel.ShipmentRequest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("shipment request")
	}
	return nil
}

func (r *GormRepository) FindByID(ctx context.Context, id uint) (*shipmentModel.ShipmentRequest, error) {
	var req shipmentModel.ShipmentRequest
	err := r.db.WithContext(ctx).Preload("User").First(&req, id).Error
	return notFound(&req, err)
}

func (r *GormRepository) Lock(ctx context.Context, tx *gorm.DB, id uint) (*shipmentModel.ShipmentRequest, error) {
	var req shipmentModel.ShipmentRequest
	err := r.conn(ctx, tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, id).Error
	return notFound(&req, err)
}

func (r *GormRepository) FindByNumber(ctx context.Context, number string) (*shipmentModel.ShipmentRequest, error) {
	var req shipmentModel.ShipmentRequest
	err := r.db.WithContext(ctx).
		Where("request_number = ?", strings.ToUpper(strings.TrimSpace(number))).
		First(&req).Error
	return notFound(&req, err)
}

func (r *GormRepository) FindByPhone(ctx context.Context, phone string, limit int) ([]shipmentModel.ShipmentRequest, error) {
	var out []shipmentModel.ShipmentRequest
	err := r.db.WithContext(ctx).
		Where("(client_phone = ? OR recipient_phone = ?)", phone, phone).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *GormRepository) List(ctx context.Context, actor access.Actor, f Filter) ([]shipmentModel.ShipmentRequest, int64, error) {
	var total int64
	if err := r.filtered(ctx, actor, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []shipmentModel.ShipmentRequest
	err := r.filtered(ctx, actor, f).Preload("User").
		Order("shipment_requests.created_at DESC, shipment_requests.id DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *GormRepository) ListForStats(ctx context.Context, actor access.Actor, f Filter) ([]shipmentModel.ShipmentRequest, error) {
	var out []shipmentModel.ShipmentRequest
	err := r.filtered(ctx, actor, f).
		Select("id", "status", "category", "price_kzt", "created_at").
		Find(&out).Error
	return out, err
}

func (r *GormRepository) AddEvent(ctx context.Context, tx *gorm.DB, ev *shipmentModel.StatusEvent) error {
	return r.conn(ctx, tx).Create(ev).Error
}

func (r *GormRepository) History(ctx context.Context, id uint) ([]shipmentModel.StatusEvent, error) {
	var out []shipmentModel.StatusEvent
	err := r.db.WithContext(ctx).
		Where("shipment_request_id = ?", id).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *GormRepository) filtered(ctx context.Context, actor access.Actor, f Filter) *gorm.DB {
	q := access.Scope(r.db.WithContext(ctx).Model(&shipmentModel.ShipmentRequest{}), actor)
	if f.Status != nil {
		q = q.Where("shipment_requests.status = ?", *f.Status)
	}
	if f.Category != nil {
		q = q.Where("shipment_requests.category = ?", *f.Category)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(
			"(shipment_requests.request_number ILIKE ? OR shipment_requests.cargo_name ILIKE ? OR shipment_requests.pickup_address ILIKE ? OR shipment_requests.delivery_address ILIKE ?)",
			p, p, p, p,
		)
	}
	if f.From != nil {
		q = q.Where("shipment_requests.created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("shipment_requests.created_at < ?", *f.To)
	}
	return q
}

func notFound(req *shipmentModel.ShipmentRequest, err error) (*shipmentModel.ShipmentRequest, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("shipment request")
		}
		return nil, err
	}
	return req, nil
}
