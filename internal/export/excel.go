// Package export renders the catalog as an .xlsx price list.
package export

import (
	"fmt"
	"io"

	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/model"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var columnWidths = []float64{24, 16, 12, 10, 14, 10, 14}

// PriceList builds a one-sheet workbook with one row per product, in the
// order given, with headers and text in lang. The caller closes the file.
func PriceList(products []model.Product, lang model.Language) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := i18n.T(lang, i18n.KeySheetName)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{
		i18n.T(lang, i18n.KeyItem),
		i18n.T(lang, i18n.KeyCategoryColumn),
		i18n.T(lang, i18n.KeyCurrentPrice),
		i18n.T(lang, i18n.KeyUnitColumn),
		i18n.T(lang, i18n.KeyTrendColumn),
		i18n.T(lang, i18n.KeyChange),
		i18n.T(lang, i18n.KeyLastUpdated),
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, p := range products {
		categoryName := p.CategoryID
		if c, ok := model.FindCategory(p.CategoryID); ok {
			categoryName = c.Name.Get(lang)
		}
		row := []interface{}{
			p.Name.Get(lang),
			categoryName,
			p.Price,
			p.Unit.Get(lang),
			i18n.T(lang, i18n.TrendKey(p.Trend)),
			p.PriceChangeLabel(),
			model.DisplayDate(p.LastUpdated),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			f.Close()
			return nil, fmt.Errorf("set width of %s: %w", col, err)
		}
	}

	return f, nil
}

// WritePriceList streams the workbook built by PriceList to w.
func WritePriceList(w io.Writer, products []model.Product, lang model.Language) error {
	f, err := PriceList(products, lang)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// FileName is the suggested download name for a list exported on date
// (YYYY-MM-DD).
func FileName(date string) string {
	return "bazar-dor-" + date + ".xlsx"
}
