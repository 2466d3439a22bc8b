package interfaces

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"theater-billing/internal/billing/currency"
	billing "theater-billing/internal/billing/domain"
)

// BuildStatementPDF renders a minimal PDF for a statement.
func BuildStatementPDF(data billing.StatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(fmt.Sprintf("Statement for %s", data.Customer)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 6, "Play", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Seats", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, perf := range data.Performances {
		pdf.CellFormat(90, 6, tr(perf.Play.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", perf.Audience), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, currency.FormatUSD(perf.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Amount owed is %s", currency.FormatUSD(data.TotalAmount)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("You earned %d credits", data.TotalVolumeCredits))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStatementXLSX renders a workbook with a summary and a performances sheet.
func BuildStatementXLSX(data billing.StatementData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	itemsSheet := "performances"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Statement")
	_ = f.SetCellValue(summarySheet, "A3", "Customer")
	_ = f.SetCellValue(summarySheet, "B3", data.Customer)
	_ = f.SetCellValue(summarySheet, "A4", "Amount Owed (USD)")
	_ = f.SetCellValue(summarySheet, "B4", currency.Dollars(data.TotalAmount).InexactFloat64())
	_ = f.SetCellValue(summarySheet, "A5", "Volume Credits")
	_ = f.SetCellValue(summarySheet, "B5", data.TotalVolumeCredits)
	_ = f.SetCellStyle(summarySheet, "B4", "B4", money)

	_ = f.SetCellValue(itemsSheet, "A1", "Play ID")
	_ = f.SetCellValue(itemsSheet, "B1", "Play")
	_ = f.SetCellValue(itemsSheet, "C1", "Type")
	_ = f.SetCellValue(itemsSheet, "D1", "Seats")
	_ = f.SetCellValue(itemsSheet, "E1", "Amount (USD)")
	_ = f.SetCellValue(itemsSheet, "F1", "Volume Credits")
	for i, perf := range data.Performances {
		row := i + 2
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), perf.PlayID)
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), perf.Play.Name)
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("C%d", row), string(perf.Play.Type))
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("D%d", row), perf.Audience)
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("E%d", row), currency.Dollars(perf.Amount).InexactFloat64())
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("F%d", row), perf.VolumeCredits)
	}
	if len(data.Performances) > 0 {
		last := fmt.Sprintf("E%d", len(data.Performances)+1)
		_ = f.SetCellStyle(itemsSheet, "E2", last, money)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
