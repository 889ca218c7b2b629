package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReportService produces downloadable xlsx reports
type ReportService struct {
	saleRepo     repository.SaleRepository
	medicineRepo repository.MedicineRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository, medicineRepo repository.MedicineRepository) *ReportService {
	return &ReportService{
		saleRepo:     saleRepo,
		medicineRepo: medicineRepo,
	}
}

// SalesReport exports completed sales in [start, end] as an xlsx workbook
func (s *ReportService) SalesReport(ctx context.Context, start, end time.Time) (*bytes.Buffer, string, error) {
	if end.Before(start) {
		return nil, "", apperror.NewBadRequestError("End date must not be before start date")
	}

	sales, err := s.saleRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Invoice No", "Date", "Items", "Subtotal", "Discount", "Tax", "Total", "Payment"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DCE6F1"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "H1", headerStyle)
	}

	grandTotal := decimal.Zero
	for i, sale := range sales {
		row := i + 2
		itemCount := 0
		for _, item := range sale.Items {
			itemCount += item.Quantity
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sale.InvoiceNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sale.SaleDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), itemCount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sale.SubTotal.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), sale.DiscountAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), sale.TaxAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), sale.Total.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), sale.PaymentType)

		grandTotal = grandTotal.Add(sale.Total)
	}

	totalRow := len(sales) + 2
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), "Grand Total")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalRow), grandTotal.InexactFloat64())

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "D", "G", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sales-report-%s-to-%s.xlsx",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	return buf, filename, nil
}

// InventoryReport exports the current medicine stock as an xlsx workbook
func (s *ReportService) InventoryReport(ctx context.Context) (*bytes.Buffer, string, error) {
	medicines, _, err := s.medicineRepo.List(ctx, nil)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Inventory"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Category", "Batch No", "Expiry", "Quantity", "Alert Level", "Unit Price", "Low Stock"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DCE6F1"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "H1", headerStyle)
	}

	for i, medicine := range medicines {
		row := i + 2

		batchNo := ""
		if medicine.BatchNo != nil {
			batchNo = *medicine.BatchNo
		}
		expiry := ""
		if medicine.ExpiryDate != nil {
			expiry = medicine.ExpiryDate.Format("2006-01-02")
		}
		lowStock := ""
		if medicine.IsLowStock() {
			lowStock = "YES"
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), medicine.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), medicine.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), batchNo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), expiry)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), medicine.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), medicine.QuantityAlert)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), medicine.UnitPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), lowStock)
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("inventory-report-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
