package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/jung-kurt/gofpdf"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ExportService renders admin reporting PDFs.
type ExportService struct {
	orderRepo *repository.OrderRepository
}

func NewExportService(orderRepo *repository.OrderRepository) *ExportService {
	return &ExportService{orderRepo: orderRepo}
}

// OrdersPDF renders a table of recent orders, optionally filtered by status.
func (s *ExportService) OrdersPDF(status entity.OrderStatus) ([]byte, error) {
	orders, total, err := s.orderRepo.ListAll(status, 1, 200)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "FlexiHire Orders Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d orders total", time.Now().Format("2006-01-02 15:04"), total))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{15, 25, 25, 30, 35, 30, 30}
	headers := []string{"ID", "Client", "Freelancer", "Package", "Status", "Payment", "Total"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, o := range orders {
		cells := []string{
			fmt.Sprintf("%d", o.ID),
			fmt.Sprintf("%d", o.ClientID),
			fmt.Sprintf("%d", o.FreelancerID),
			string(o.SelectedPackage),
			string(o.Status),
			string(o.PaymentStatus),
			o.TotalAmount.StringFixed(2),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RevenuePDF summarizes paid volume and collected platform fees by status.
func (s *ExportService) RevenuePDF() ([]byte, error) {
	orders, _, err := s.orderRepo.ListAll("", 1, 1000)
	if err != nil {
		return nil, err
	}

	paid := lo.Filter(orders, func(o entity.Order, _ int) bool {
		return o.PaymentStatus == entity.PaymentPaid || o.PaymentStatus == entity.PaymentRefunded
	})
	byStatus := lo.GroupBy(paid, func(o entity.Order) entity.OrderStatus { return o.Status })

	grossTotal := decimal.Zero
	feeTotal := decimal.Zero
	for _, o := range paid {
		grossTotal = grossTotal.Add(o.TotalAmount)
		feeTotal = feeTotal.Add(o.TotalAmount.Sub(o.PackageDetails.Price))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "FlexiHire Revenue Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 7, "Order status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Orders", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Gross", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for status, group := range byStatus {
		gross := decimal.Zero
		for _, o := range group {
			gross = gross.Add(o.TotalAmount)
		}
		pdf.CellFormat(60, 6, string(status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", len(group)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, gross.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 7, fmt.Sprintf("Gross volume: %s", grossTotal.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Platform fees collected: %s", feeTotal.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
