// Package report bundles a metrics table and its charts into one PDF.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Document is the content of a report.
type Document struct {
	Title   string
	Columns []string
	Rows    [][]string
	Charts  []string // PNG files, one page each
}

const (
	pageW  = 297.0 // A4 landscape, mm
	margin = 10.0
)

// newPDF returns an A4 landscape document and the translator turning UTF-8
// into the cp1252 encoding of its core fonts.
func newPDF() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// Write renders doc to path, overwriting any existing file.
func Write(path string, doc Document) error {
	pdf, tr := newPDF()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if n := len(doc.Columns); n > 0 {
		colW := (pageW - 2*margin) / float64(n)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range doc.Columns {
			pdf.CellFormat(colW, 7, tr(c), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, row := range doc.Rows {
			for i := 0; i < n; i++ {
				cell := ""
				if i < len(row) {
					// labels are two lines on charts, one line in the table
					cell = strings.ReplaceAll(row[i], "\n", " ")
				}
				pdf.CellFormat(colW, 6, tr(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	for _, chart := range doc.Charts {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(strings.TrimSuffix(filepath.Base(chart), ".png")), "", 1, "L", false, 0, "")
		pdf.ImageOptions(chart, margin, pdf.GetY()+2, pageW-2*margin, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
