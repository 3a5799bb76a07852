package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
)

// BuildLedgerXLSX renders the report as an XLSX workbook with a ledger
// sheet and a summary sheet.
func BuildLedgerXLSX(report *ledger.Report, format Format) ([]byte, error) {
	f := excelize.NewFile()
	ledgerSheet := "ledger"
	summarySheet := "summary"
	f.SetSheetName("Sheet1", ledgerSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	for i, header := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ledgerSheet, cell, header)
	}

	for i, e := range report.Entries {
		row := i + 2
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row), format.date(e.Date))
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row), e.TypeLabel)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row), e.Reference)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row), e.DocumentNumber)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", row), e.UserName)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", row), e.Location)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("G%d", row), e.Opening)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("H%d", row), e.QtyIn)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("I%d", row), e.QtyOut)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("J%d", row), e.Closing)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("K%d", row), format.price(e.Price))
	}

	_ = f.SetCellValue(summarySheet, "A1", "Tire Stock Ledger")
	_ = f.SetCellValue(summarySheet, "A3", "From")
	_ = f.SetCellValue(summarySheet, "B3", format.date(report.FromDate))
	_ = f.SetCellValue(summarySheet, "A4", "To")
	_ = f.SetCellValue(summarySheet, "B4", format.date(report.ToDate))
	_ = f.SetCellValue(summarySheet, "A5", "Total Entries")
	_ = f.SetCellValue(summarySheet, "B5", report.TotalEntries)
	_ = f.SetCellValue(summarySheet, "A6", "Total Qty In")
	_ = f.SetCellValue(summarySheet, "B6", report.TotalQtyIn)
	_ = f.SetCellValue(summarySheet, "A7", "Total Qty Out")
	_ = f.SetCellValue(summarySheet, "B7", report.TotalQtyOut)
	_ = f.SetCellValue(summarySheet, "A8", "Final Closing Stock")
	_ = f.SetCellValue(summarySheet, "B8", report.FinalClosing)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
