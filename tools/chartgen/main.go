// chartgen writes the unit-reference sheets (XLSX workbook and PDF chart)
// to an output directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	catalog "uniconv/internal/catalog/domain"
	"uniconv/internal/export"
)

func main() {
	outDir := flag.String("out", "var/reference", "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "chartgen: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	cat := catalog.DefaultCatalog()

	workbook, err := export.Workbook(cat)
	if err != nil {
		return err
	}
	defer workbook.Close()
	xlsxPath := filepath.Join(outDir, "uniconv-reference.xlsx")
	if err := workbook.SaveAs(xlsxPath); err != nil {
		return err
	}
	fmt.Println("wrote", xlsxPath)

	chart, err := export.Chart(cat)
	if err != nil {
		return err
	}
	pdfPath := filepath.Join(outDir, "uniconv-reference.pdf")
	if err := chart.OutputFileAndClose(pdfPath); err != nil {
		return err
	}
	fmt.Println("wrote", pdfPath)
	return nil
}
