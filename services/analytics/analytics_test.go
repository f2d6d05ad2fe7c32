package analytics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"logistics-requests/constants"
	"logistics-requests/errs"
	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/access"
	"logistics-requests/services/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	manager  = access.Actor{UserID: 1, Role: constants.RoleManager}
	employee = access.Actor{UserID: 2, Role: constants.RoleEmployee}

	// Wednesday.
	at = time.Date(2025, time.March, 12, 15, 4, 0, 0, time.UTC)
)

func TestResolveWindowNamedPeriods(t *testing.T) {
	cases := []struct {
		period   string
		from, to time.Time
	}{
		{PeriodDay, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)},
		{PeriodWeek, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)},
		{PeriodMonth, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			w, err := ResolveWindow(tc.period, "", "", at)
			require.NoError(t, err)
			assert.True(t, tc.from.Equal(*w.From), "from %s", w.From)
			assert.True(t, tc.to.Equal(*w.To), "to %s", w.To)
		})
	}

	w, err := ResolveWindow("all", "", "", at)
	require.NoError(t, err)
	assert.Nil(t, w.From)
	assert.Nil(t, w.To)

	_, err = ResolveWindow("decade", "", "", at)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestResolveWindowExplicitDates(t *testing.T) {
	w, err := ResolveWindow("month", "2025-01-01", "2025-01-31", at)
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Equal(*w.From))
	assert.True(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).Equal(*w.To), "to covers the whole last day")

	_, err = ResolveWindow("", "2025-02-01", "2025-01-01", at)
	assert.ErrorIs(t, err, errs.ErrValidation)
	_, err = ResolveWindow("", "01.02.2025", "", at)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func priced(created time.Time, status shipmentModel.Status, price int64) shipmentModel.ShipmentRequest {
	r := shipmentModel.ShipmentRequest{Category: shipmentModel.CategoryAstana, Status: status, CreatedAt: created}
	if price > 0 {
		p := decimal.NewFromInt(price)
		r.PriceKzt = &p
	}
	return r
}

func sampleRows() []shipmentModel.ShipmentRequest {
	return []shipmentModel.ShipmentRequest{
		priced(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), shipmentModel.StatusDelivered, 10000),
		priced(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), shipmentModel.StatusNew, 0),
		priced(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC), shipmentModel.StatusCancelled, 20000),
	}
}

func TestBuildReportGroupsByMonth(t *testing.T) {
	r := BuildReport(Window{}, sampleRows())

	require.Len(t, r.Months, 2)
	assert.Equal(t, "2025-01", r.Months[0].Month)
	assert.Equal(t, int64(1), r.Months[0].Total)
	assert.True(t, r.Months[0].AvgOrderValue.IsZero())

	assert.Equal(t, "2025-02", r.Months[1].Month)
	assert.Equal(t, int64(2), r.Months[1].Total)
	assert.True(t, r.Months[1].AvgOrderValue.Equal(decimal.NewFromInt(15000)))

	assert.Equal(t, int64(3), r.Total.Total)
	assert.Equal(t, int64(2), r.Total.PricedCount)
}

type stubSource struct {
	got  shipment.Filter
	rows []shipmentModel.ShipmentRequest
}

func (s *stubSource) ListForStats(_ context.Context, _ access.Actor, f shipment.Filter) ([]shipmentModel.ShipmentRequest, error) {
	s.got = f
	return s.rows, nil
}

func TestServiceIsManagerOnly(t *testing.T) {
	svc := NewService(&stubSource{})
	_, err := svc.Summary(context.Background(), employee, Query{})
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = svc.Report(context.Background(), employee, Query{})
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestServicePassesWindowToSource(t *testing.T) {
	src := &stubSource{rows: sampleRows()}
	svc := NewService(src)
	svc.now = func() time.Time { return at }

	status := shipmentModel.StatusDelivered
	sum, err := svc.Summary(context.Background(), manager, Query{Period: "month", Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.Total)
	require.NotNil(t, src.got.From)
	assert.Equal(t, time.March, src.got.From.Month())
	assert.Equal(t, &status, src.got.Status)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(BuildReport(Window{}, sampleRows()), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header, two months, total")
	assert.Equal(t, "Месяц", rows[0][0])
	assert.Equal(t, "Новая", rows[0][4])
	assert.Equal(t, "2025-01", rows[1][0])
	assert.Equal(t, "ИТОГО", rows[3][0])
	assert.Equal(t, "3", rows[3][1])
}
