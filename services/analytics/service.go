package analytics

import (
	"context"
	"time"

	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/access"
	"logistics-requests/services/lifecycle"
	"logistics-requests/services/shipment"
)

// Source loads the rows to aggregate, already scoped to the actor.
type Source interface {
	ListForStats(ctx context.Context, actor access.Actor, f shipment.Filter) ([]shipmentModel.ShipmentRequest, error)
}

type Query struct {
	Period   string
	From     string
	To       string
	Status   *shipmentModel.Status
	Category *shipmentModel.Category
}

// Summary is the analytics endpoint payload.
type Summary struct {
	Window Window `json:"window"`
	lifecycle.Stats
}

type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

func (s *Service) load(ctx context.Context, actor access.Actor, q Query) (Window, []shipmentModel.ShipmentRequest, error) {
	if err := access.RequireManager(actor); err != nil {
		return Window{}, nil, err
	}
	w, err := ResolveWindow(q.Period, q.From, q.To, s.now())
	if err != nil {
		return Window{}, nil, err
	}
	rows, err := s.source.ListForStats(ctx, actor, shipment.Filter{
		Status:   q.Status,
		Category: q.Category,
		From:     w.From,
		To:       w.To,
	})
	if err != nil {
		return Window{}, nil, err
	}
	return w, rows, nil
}

// Summary aggregates every request in the window. Manager only.
func (s *Service) Summary(ctx context.Context, actor access.Actor, q Query) (Summary, error) {
	w, rows, err := s.load(ctx, actor, q)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Window: w, Stats: lifecycle.Aggregate(rows)}, nil
}

// Report breaks the window down by month. Manager only.
func (s *Service) Report(ctx context.Context, actor access.Actor, q Query) (Report, error) {
	w, rows, err := s.load(ctx, actor, q)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(w, rows), nil
}
