package analytics

import (
	"fmt"
	"io"

	"logistics-requests/constants"
	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/lifecycle"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Отчёт"

// WriteXLSX renders r as a single-sheet workbook.
func WriteXLSX(r Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#3b82f6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	total, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#cbd5e1"}, Pattern: 1},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
	})
	if err != nil {
		return err
	}

	statuses := shipmentModel.GetAllStatuses()
	headers := []any{"Месяц", "Всего", "По Астане", "Межгород"}
	for _, s := range statuses {
		headers = append(headers, lifecycle.DisplayName(s, constants.LocaleRU))
	}
	headers = append(headers, "С ценой", "Выручка, ₸", "Средний чек, ₸")

	if err := f.SetSheetRow(reportSheet, "A1", &headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(reportSheet, "A1", last, header); err != nil {
		return err
	}

	rowNum := 2
	for _, m := range r.Months {
		if err := writeStatsRow(f, rowNum, m.Month, m.Stats, statuses); err != nil {
			return err
		}
		rowNum++
	}
	if err := writeStatsRow(f, rowNum, "ИТОГО", r.Total, statuses); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, rowNum)
	last, _ = excelize.CoordinatesToCellName(len(headers), rowNum)
	if err := f.SetCellStyle(reportSheet, first, last, total); err != nil {
		return err
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 12); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(reportSheet, "B", lastCol, 14); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func writeStatsRow(f *excelize.File, rowNum int, label string, st lifecycle.Stats, statuses []shipmentModel.Status) error {
	row := []any{
		label,
		st.Total,
		st.ByCategory[shipmentModel.CategoryAstana],
		st.ByCategory[shipmentModel.CategoryIntercity],
	}
	for _, s := range statuses {
		row = append(row, st.ByStatus[s])
	}
	revenue, _ := st.RevenueSum.Float64()
	avg, _ := st.AvgOrderValue.Float64()
	row = append(row, st.PricedCount, revenue, avg)

	return f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", rowNum), &row)
}
