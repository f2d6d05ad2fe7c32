package shipment

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics-requests/database"
	"logistics-requests/errs"
	"logistics-requests/logger"
	shipmentModel "logistics-requests/models/shipment"
	userModel "logistics-requests/models/user"
	"logistics-requests/services/access"
	"logistics-requests/services/lifecycle"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TrackByPhoneLimit caps how many requests a phone lookup reveals.
const TrackByPhoneLimit = 20

// NumberAllocator allocates a request number and inserts within one transaction.
type NumberAllocator interface {
	CreateWithNumber(ctx context.Context, category shipmentModel.Category, at time.Time, insert func(tx *gorm.DB, number string) error) (string, error)
}

// OwnerLookup finds the account a publicly submitted request belongs to.
type OwnerLookup interface {
	OwnerForPhone(ctx context.Context, phone string) (*userModel.User, error)
	SystemOwner(ctx context.Context) (*userModel.User, error)
}

// Notifier receives lifecycle events. Implementations must not block or fail the caller.
type Notifier interface {
	RequestCreated(ctx context.Context, r *shipmentModel.ShipmentRequest)
	StatusChanged(ctx context.Context, r *shipmentModel.ShipmentRequest, from, to shipmentModel.Status, changedBy string)
	RequestDeleted(ctx context.Context, r *shipmentModel.ShipmentRequest, deletedBy string)
}

type nopNotifier struct{}

func (nopNotifier) RequestCreated(context.Context, *shipmentModel.ShipmentRequest) {}
func (nopNotifier) StatusChanged(context.Context, *shipmentModel.ShipmentRequest, shipmentModel.Status, shipmentModel.Status, string) {
}
func (nopNotifier) RequestDeleted(context.Context, *shipmentModel.ShipmentRequest, string) {}

type Deps struct {
	Repo     Repository
	Tx       database.Transactor
	Numbers  NumberAllocator
	Owners   OwnerLookup
	Notifier Notifier
	Now      func() time.Time
}

type Service struct {
	repo     Repository
	tx       database.Transactor
	numbers  NumberAllocator
	owners   OwnerLookup
	notifier Notifier
	now      func() time.Time
}

func NewService(d Deps) *Service {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	notifier := d.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		repo:     d.Repo,
		tx:       d.Tx,
		numbers:  d.Numbers,
		owners:   d.Owners,
		notifier: notifier,
		now:      now,
	}
}

// CreateInput carries a new request. Pricing fields are manager-only.
type CreateInput struct {
	Category         shipmentModel.Category
	ClientName       string
	ClientPhone      string
	RecipientName    string
	RecipientPhone   string
	PickupAddress    string
	DeliveryAddress  string
	FromCity         string
	ToCity           string
	CargoName        string
	CargoWeightKg    *decimal.Decimal
	CargoVolumeM3    *decimal.Decimal
	CargoDescription string
	Comment          string
	PriceKzt         *decimal.Decimal
	PriceNotes       string
	TransportInfo    string
}

func (in CreateInput) hasPricing() bool {
	return in.PriceKzt != nil || in.PriceNotes != "" || in.TransportInfo != ""
}

// UpdateInput holds optional changes; nil fields are left alone.
type UpdateInput struct {
	Category *shipmentModel.Category
	Status   *shipmentModel.Status
	// StatusComment is stored on the history event of a status change.
	StatusComment string

	PriceKzt      *decimal.Decimal
	ClearPrice    bool
	PriceNotes    *string
	TransportInfo *string

	ClientName       *string
	ClientPhone      *string
	RecipientName    *string
	RecipientPhone   *string
	PickupAddress    *string
	DeliveryAddress  *string
	FromCity         *string
	ToCity           *string
	CargoName        *string
	CargoWeightKg    *decimal.Decimal
	CargoVolumeM3    *decimal.Decimal
	CargoDescription *string
	Comment          *string
}

func (in UpdateInput) hasPricing() bool {
	return in.PriceKzt != nil || in.ClearPrice || in.PriceNotes != nil || in.TransportInfo != nil
}

// Create stores a request owned by actor.
func (s *Service) Create(ctx context.Context, actor access.Actor, in CreateInput) (*shipmentModel.ShipmentRequest, error) {
	if in.hasPricing() {
		if err := access.CanSetPricing(actor); err != nil {
			return nil, err
		}
	}
	owner := actor.UserID
	return s.create(ctx, in, &owner, &owner)
}

// CreatePublic stores an unauthenticated submission. It belongs to the
// account registered with the client phone, or to the system owner.
func (s *Service) CreatePublic(ctx context.Context, in CreateInput) (*shipmentModel.ShipmentRequest, error) {
	in.PriceKzt, in.PriceNotes, in.TransportInfo = nil, "", ""

	owner, err := s.publicOwner(ctx, in.ClientPhone)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, in, owner, nil)
}

// publicOwner returns nil when neither a matching account nor the system
// owner exists yet.
func (s *Service) publicOwner(ctx context.Context, phone string) (*uint, error) {
	if s.owners == nil {
		return nil, nil
	}
	u, err := s.owners.OwnerForPhone(ctx, phone)
	if errors.Is(err, errs.ErrNotFound) {
		u, err = s.owners.SystemOwner(ctx)
		if errors.Is(err, errs.ErrNotFound) {
			logger.Warning("system owner is not seeded, public request stored without owner")
			return nil, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return &u.ID, nil
}

func (s *Service) create(ctx context.Context, in CreateInput, owner, changedBy *uint) (*shipmentModel.ShipmentRequest, error) {
	if !in.Category.IsValid() {
		return nil, errs.Validation("category must be astana or intercity")
	}
	at := s.now()
	req := &shipmentModel.ShipmentRequest{
		Category:         in.Category,
		Status:           shipmentModel.StatusNew,
		UserID:           owner,
		ClientName:       strings.TrimSpace(in.ClientName),
		ClientPhone:      in.ClientPhone,
		RecipientName:    strings.TrimSpace(in.RecipientName),
		RecipientPhone:   in.RecipientPhone,
		PickupAddress:    strings.TrimSpace(in.PickupAddress),
		DeliveryAddress:  strings.TrimSpace(in.DeliveryAddress),
		FromCity:         strings.TrimSpace(in.FromCity),
		ToCity:           strings.TrimSpace(in.ToCity),
		CargoName:        strings.TrimSpace(in.CargoName),
		CargoWeightKg:    in.CargoWeightKg,
		CargoVolumeM3:    in.CargoVolumeM3,
		CargoDescription: in.CargoDescription,
		Comment:          in.Comment,
		PriceKzt:         in.PriceKzt,
		PriceNotes:       in.PriceNotes,
		TransportInfo:    in.TransportInfo,
		CreatedAt:        at,
		UpdatedAt:        at,
	}

	_, err := s.numbers.CreateWithNumber(ctx, req.Category, at, func(tx *gorm.DB, number string) error {
		req.ID = 0
		req.RequestNumber = number
		if err := s.repo.Insert(ctx, tx, req); err != nil {
			return err
		}
		return s.repo.AddEvent(ctx, tx, &shipmentModel.StatusEvent{
			ShipmentRequestID: req.ID,
			ToStatus:          shipmentModel.StatusNew,
			ChangedBy:         changedBy,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.RequestCreated(ctx, req)
	return req, nil
}

// Get returns one request the actor may see.
func (s *Service) Get(ctx context.Context, actor access.Actor, id uint) (*shipmentModel.ShipmentRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanView(actor, req); err != nil {
		return nil, err
	}
	return req, nil
}

// List returns one page of the actor's visible requests and the total match count.
func (s *Service) List(ctx context.Context, actor access.Actor, f Filter) ([]shipmentModel.ShipmentRequest, int64, error) {
	f.Normalize()
	return s.repo.List(ctx, actor, f)
}

// Update applies in under a row lock and records status changes.
func (s *Service) Update(ctx context.Context, actor access.Actor, id uint, in UpdateInput) (*shipmentModel.ShipmentRequest, error) {
	var (
		req     *shipmentModel.ShipmentRequest
		from    shipmentModel.Status
		changed bool
	)
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		req, err = s.repo.Lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := access.CanModify(actor, req); err != nil {
			return err
		}
		if in.hasPricing() {
			if err := access.CanSetPricing(actor); err != nil {
				return err
			}
		}
		if in.Category != nil && *in.Category != req.Category {
			return errs.Validation("category cannot be changed after creation")
		}

		from = req.Status
		if in.Status != nil {
			if err := lifecycle.ValidateTransition(req.Status, *in.Status); err != nil {
				return err
			}
			changed = *in.Status != req.Status
			req.Status = *in.Status
		}
		applyUpdate(req, in)
		req.UpdatedAt = s.now()

		if err := s.repo.Save(ctx, tx, req); err != nil {
			return err
		}
		if !changed {
			return nil
		}
		changedBy := actor.UserID
		return s.repo.AddEvent(ctx, tx, &shipmentModel.StatusEvent{
			ShipmentRequestID: req.ID,
			FromStatus:        from,
			ToStatus:          req.Status,
			ChangedBy:         &changedBy,
			Comment:           in.StatusComment,
		})
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.notifier.StatusChanged(ctx, req, from, req.Status, actor.Username)
	}
	return req, nil
}

func applyUpdate(req *shipmentModel.ShipmentRequest, in UpdateInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	if in.ClearPrice {
		req.PriceKzt = nil
	}
	if in.PriceKzt != nil {
		req.PriceKzt = in.PriceKzt
	}
	if in.CargoWeightKg != nil {
		req.CargoWeightKg = in.CargoWeightKg
	}
	if in.CargoVolumeM3 != nil {
		req.CargoVolumeM3 = in.CargoVolumeM3
	}
	setString(&req.PriceNotes, in.PriceNotes)
	setString(&req.TransportInfo, in.TransportInfo)
	setString(&req.ClientName, in.ClientName)
	setString(&req.ClientPhone, in.ClientPhone)
	setString(&req.RecipientName, in.RecipientName)
	setString(&req.RecipientPhone, in.RecipientPhone)
	setString(&req.PickupAddress, in.PickupAddress)
	setString(&req.DeliveryAddress, in.DeliveryAddress)
	setString(&req.FromCity, in.FromCity)
	setString(&req.ToCity, in.ToCity)
	setString(&req.CargoName, in.CargoName)
	setString(&req.CargoDescription, in.CargoDescription)
	setString(&req.Comment, in.Comment)
}

// Delete removes a request. Its number is never reissued.
func (s *Service) Delete(ctx context.Context, actor access.Actor, id uint) error {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanDelete(actor, req); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.RequestDeleted(ctx, req, actor.Username)
	return nil
}

// History lists the status events of a request the actor may see.
func (s *Service) History(ctx context.Context, actor access.Actor, id uint) ([]shipmentModel.StatusEvent, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, id)
}

// Stats aggregates everything the actor can see that matches f.
func (s *Service) Stats(ctx context.Context, actor access.Actor, f Filter) (lifecycle.Stats, error) {
	rows, err := s.repo.ListForStats(ctx, actor, f)
	if err != nil {
		return lifecycle.Stats{}, err
	}
	return lifecycle.Aggregate(rows), nil
}

// TrackByNumber is the unauthenticated lookup; callers must redact the result.
func (s *Service) TrackByNumber(ctx context.Context, number string) (*shipmentModel.ShipmentRequest, error) {
	if strings.TrimSpace(number) == "" {
		return nil, errs.Validation("request number is required")
	}
	return s.repo.FindByNumber(ctx, number)
}

// TrackByPhone returns the latest requests sent from or to phone.
func (s *Service) TrackByPhone(ctx context.Context, phone string) ([]shipmentModel.ShipmentRequest, error) {
	if phone == "" {
		return nil, errs.Validation("phone is required")
	}
	rows, err := s.repo.FindByPhone(ctx, phone, TrackByPhoneLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NotFound("shipment request")
	}
	return rows, nil
}
