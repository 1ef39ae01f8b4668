package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// ReportService computes the financial summary over the ledger.
type ReportService struct {
	Txns repositories.TransactionStore
}

func NewReportService(txns repositories.TransactionStore) *ReportService {
	return &ReportService{Txns: txns}
}

// Summary returns overall income/expense totals plus a 12-month
// breakdown for the current calendar year. Responses are served from
// the cache when a recent one exists; ledger writes invalidate it.
func (s *ReportService) Summary(ctx context.Context) (*models.FinancialSummary, error) {
	if data, ok := cache.GetCachedSummary(ctx); ok {
		var cached models.FinancialSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	summary, err := s.computeSummary(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.CacheSummary(ctx, data)
	}
	return summary, nil
}

func (s *ReportService) computeSummary(ctx context.Context, now time.Time) (*models.FinancialSummary, error) {
	txns, err := s.Txns.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildSummary(txns, now), nil
}

// buildSummary aggregates the ledger. Totals cover every transaction;
// the monthly breakdown only counts transactions dated within the
// calendar year of the reference instant.
func buildSummary(txns []*models.Transaction, now time.Time) *models.FinancialSummary {
	summary := &models.FinancialSummary{
		MonthlyData: make([]models.MonthlyFigure, 12),
	}
	for i := range summary.MonthlyData {
		summary.MonthlyData[i].Month = i + 1
	}

	year := now.Year()
	for _, t := range txns {
		income := t.Type == models.TransactionTypeIncome
		if income {
			summary.TotalIncome += t.Amount
		} else {
			summary.TotalExpense += t.Amount
		}

		date := t.Date.In(now.Location())
		if date.Year() != year {
			continue
		}
		m := &summary.MonthlyData[int(date.Month())-1]
		if income {
			m.Income += t.Amount
		} else {
			m.Expense += t.Amount
		}
	}

	summary.NetIncome = summary.TotalIncome - summary.TotalExpense
	return summary
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SummaryPDF renders the financial summary as a printable PDF.
func (s *ReportService) SummaryPDF(ctx context.Context) ([]byte, error) {
	now := time.Now()
	summary, err := s.computeSummary(ctx, now)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Financial Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", now.Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Totals box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Totals", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 7, fmt.Sprintf("Income: %.2f", summary.TotalIncome), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(63, 7, fmt.Sprintf("Expense: %.2f", summary.TotalExpense), "B", 0, "L", false, 0, "")
	pdf.CellFormat(64, 7, fmt.Sprintf("Net: %.2f", summary.NetIncome), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Monthly table for the current year
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Monthly Breakdown %d", now.Year()), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Month", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, "Income", "1", 0, "R", true, 0, "")
	pdf.CellFormat(60, 7, "Expense", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, m := range summary.MonthlyData {
		pdf.CellFormat(70, 7, monthNames[m.Month-1], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("%.2f", m.Income), "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("%.2f", m.Expense), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
