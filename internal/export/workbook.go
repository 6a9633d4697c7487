// Package export renders the unit catalog into downloadable reference
// material: an XLSX workbook and a printable PDF conversion chart.
package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	catalog "uniconv/internal/catalog/domain"
)

// temperatureFormulas documents the pairwise affine conversions; affine
// units carry no single factor to tabulate.
var temperatureFormulas = [][]string{
	{"Celsius -> Fahrenheit", "v * 9/5 + 32"},
	{"Fahrenheit -> Celsius", "(v - 32) * 5/9"},
	{"Celsius -> Kelvin", "v + 273.15"},
	{"Kelvin -> Celsius", "v - 273.15"},
	{"Fahrenheit -> Kelvin", "(v - 32) * 5/9 + 273.15"},
	{"Kelvin -> Fahrenheit", "(v - 273.15) * 9/5 + 32"},
}

// Workbook builds one sheet per category listing unit names, symbols and
// base factors.
func Workbook(c *catalog.Catalog) (*excelize.File, error) {
	if c == nil {
		return nil, errors.New("export: nil catalog")
	}
	f := excelize.NewFile()

	for i, cat := range c.Categories() {
		sheet := cat.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		if cat.Affine() {
			if err := f.SetSheetRow(sheet, "A1", &[]any{"Conversion", "Formula"}); err != nil {
				return nil, err
			}
			for row, formula := range temperatureFormulas {
				cell := fmt.Sprintf("A%d", row+2)
				if err := f.SetSheetRow(sheet, cell, &[]any{formula[0], formula[1]}); err != nil {
					return nil, err
				}
			}
			continue
		}

		if err := f.SetSheetRow(sheet, "A1", &[]any{"Unit", "Symbol", "Factor to base"}); err != nil {
			return nil, err
		}
		for row, u := range cat.Units {
			cell := fmt.Sprintf("A%d", row+2)
			if err := f.SetSheetRow(sheet, cell, &[]any{u.Name, u.Symbol, u.Factor}); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
