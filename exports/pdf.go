package exports

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
)

const (
	PDFFilename    = "job_applications.pdf"
	PDFContentType = "application/pdf"

	pdfTitle = "Job Applications Report"

	// layout in points
	pdfMargin     = 30.0
	pdfFontSize   = 8.0
	pdfLineHeight = 10.0
	pdfCellPad    = 2.0
)

var (
	pdfColumns = []string{"Title", "Company", "Location", "Status", "Applied Date", "Link", "Notes"}
	pdfWidths  = []float64{70, 70, 60, 60, 60, 100, 100}
)

// PDF writes an A4 portrait report with one table row per job. The header row repeats on every page.
func PDF(w io.Writer, list []*jobs.Job) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(pdfTitle, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, pdfTitle, "", 1, "C", false, 0, "")
	pdf.Ln(12)

	header := func() {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(30, 58, 138)
		pdf.SetTextColor(255, 255, 255)
		drawRow(pdf, pdfColumns)
		pdf.SetFont("Helvetica", "", pdfFontSize)
		pdf.SetFillColor(245, 245, 245)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, j := range list {
		cells := []string{
			tr(orDash(j.Title)),
			tr(orDash(j.Company)),
			tr(orDash(jobs.Deref(j.Location))),
			tr(orDash(string(j.Status))),
			tr(orDash(j.AppliedDate.String())),
			tr(orDash(jobs.Deref(j.Link))),
			tr(orDash(jobs.Deref(j.Notes))),
		}
		if pdf.GetY()+rowHeight(pdf, cells) > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		drawRow(pdf, cells)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrapf(err, "render pdf")
	}
	return nil
}

func rowHeight(pdf *fpdf.Fpdf, cells []string) float64 {
	lines := 1
	for i, c := range cells {
		if n := len(pdf.SplitLines([]byte(c), pdfWidths[i]-2*pdfCellPad)); n > lines {
			lines = n
		}
	}
	return float64(lines)*pdfLineHeight + 2*pdfCellPad
}

// drawRow draws a bordered, filled row whose height fits the tallest cell.
func drawRow(pdf *fpdf.Fpdf, cells []string) {
	h := rowHeight(pdf, cells)
	x, y := pdf.GetXY()
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.25)
	for i, c := range cells {
		pdf.Rect(x, y, pdfWidths[i], h, "FD")
		pdf.SetXY(x+pdfCellPad, y+pdfCellPad)
		pdf.MultiCell(pdfWidths[i]-2*pdfCellPad, pdfLineHeight, c, "", "L", false)
		x += pdfWidths[i]
	}
	pdf.SetXY(pdfMargin, y+h)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
