// Package export renders orders into xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/finance"
)

// ContentType is the MIME type of produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	orderWidths = map[string]float64{"A": 15, "B": 30, "C": 30, "D": 20, "K": 20}
	cargoWidths = map[string]float64{"A": 50, "B": 30, "C": 20}
)

// WriteOrders writes an order sheet. Customer sheets quote prices at the purchase rate.
func WriteOrders(w io.Writer, orders []model.Order, forCustomer bool) error {
	rows := make([][]any, 0, len(orders))
	for i := range orders {
		rows = append(rows, finance.ExportRow(&orders[i], forCustomer))
	}
	return write(w, finance.ExportHeader, rows, orderWidths)
}

// WriteCargo writes title and track number pairs of orders.
func WriteCargo(w io.Writer, orders []model.Order) error {
	rows := make([][]any, 0, len(orders))
	for i := range orders {
		rows = append(rows, finance.CargoRow(&orders[i]))
	}
	return write(w, finance.CargoHeader, rows, cargoWidths)
}

// Filename returns escaped attachment name for Content-Disposition.
func Filename(title string) string {
	return url.PathEscape(title + ".xlsx")
}

// CargoFilename returns escaped attachment name of the track number sheet.
func CargoFilename(title string) string {
	return Filename(title + " - track numbers")
}

func write(w io.Writer, header []string, rows [][]any, widths map[string]float64) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	for i, row := range rows {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
