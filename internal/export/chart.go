package export

import (
	"errors"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	catalog "uniconv/internal/catalog/domain"
)

// Chart builds a printable conversion chart: one table per category with
// unit names, symbols and base factors.
func Chart(c *catalog.Catalog) (*gofpdf.Fpdf, error) {
	if c == nil {
		return nil, errors.New("export: nil catalog")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Uniconv Reference Chart", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Unit Conversion Reference")
	pdf.Ln(14)

	for _, cat := range c.Categories() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, cat.Name)
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 10)
		if cat.Affine() {
			for _, formula := range temperatureFormulas {
				pdf.CellFormat(70, 6, formula[0], "1", 0, "L", false, 0, "")
				pdf.CellFormat(70, 6, formula[1], "1", 0, "L", false, 0, "")
				pdf.Ln(6)
			}
		} else {
			pdf.CellFormat(70, 6, "Unit", "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, "Symbol", "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, "Factor to base", "1", 0, "R", false, 0, "")
			pdf.Ln(6)
			for _, u := range cat.Units {
				pdf.CellFormat(70, 6, u.Name, "1", 0, "L", false, 0, "")
				pdf.CellFormat(30, 6, u.Symbol, "1", 0, "L", false, 0, "")
				pdf.CellFormat(40, 6, strconv.FormatFloat(u.Factor, 'g', -1, 64), "1", 0, "R", false, 0, "")
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}
