package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
)

// BuildLedgerPDF renders a printable report: entry table plus the
// aggregate totals block.
func BuildLedgerPDF(report *ledger.Report, format Format) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Tire Stock Ledger")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", format.date(report.FromDate), format.date(report.ToDate)))
	pdf.Ln(8)

	widths := []float64{22, 32, 45, 40, 24, 26, 18, 14, 14, 18, 24}
	headers := []string{"Date", "Type", "Reference", "Document No", "User", "Location", "Open", "In", "Out", "Close", "Price"}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, e := range report.Entries {
		cells := []string{
			format.date(e.Date),
			e.TypeLabel,
			e.Reference,
			e.DocumentNumber,
			e.UserName,
			e.Location,
			fmt.Sprintf("%d", e.Opening),
			fmt.Sprintf("%d", e.QtyIn),
			fmt.Sprintf("%d", e.QtyOut),
			fmt.Sprintf("%d", e.Closing),
			format.price(e.Price),
		}
		for i, c := range cells {
			align := "L"
			if i >= 6 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Entries: %d    Total In: %d    Total Out: %d    Final Closing Stock: %d",
		report.TotalEntries, report.TotalQtyIn, report.TotalQtyOut, report.FinalClosing))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
