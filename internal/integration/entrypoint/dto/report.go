// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackify/backend/internal/application/usecase/report"
	"github.com/trackify/backend/internal/domain/entity"
)

// MonthlyTotalResponse represents one month of the monthly report.
type MonthlyTotalResponse struct {
	Month int    `json:"month"`
	Total string `json:"total"`
}

// CategoryTotalResponse represents one category of the per-category report.
type CategoryTotalResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Total        string `json:"total"`
}

// DailyTotalResponse represents one date of the daily trend report.
type DailyTotalResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// TopExpenseResponse represents one entry of the top expenses report.
type TopExpenseResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Amount      string    `json:"amount"`
	PaymentMode string    `json:"paymentMode"`
	Note        *string   `json:"note"`
	ReceiptURL  *string   `json:"receiptUrl"`
	SpentAt     time.Time `json:"spentAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToMonthlyTotalsResponse converts monthly totals to their response DTOs.
func ToMonthlyTotalsResponse(totals []report.MonthlyTotal) []MonthlyTotalResponse {
	response := make([]MonthlyTotalResponse, len(totals))
	for i, t := range totals {
		response[i] = MonthlyTotalResponse{Month: t.Month, Total: FormatAmount(t.Total)}
	}
	return response
}

// ToCategoryTotalsResponse converts category totals to their response DTOs.
func ToCategoryTotalsResponse(totals []report.CategoryTotal) []CategoryTotalResponse {
	response := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		response[i] = CategoryTotalResponse{
			CategoryID:   t.CategoryID.String(),
			CategoryName: t.CategoryName,
			Total:        FormatAmount(t.Total),
		}
	}
	return response
}

// ToDailyTotalsResponse converts daily totals to their response DTOs.
func ToDailyTotalsResponse(totals []report.DailyTotal) []DailyTotalResponse {
	response := make([]DailyTotalResponse, len(totals))
	for i, t := range totals {
		response[i] = DailyTotalResponse{Date: t.Date.Format(time.DateOnly), Total: FormatAmount(t.Total)}
	}
	return response
}

// ToTopExpensesResponse converts top expenses to their response DTOs.
func ToTopExpensesResponse(expenses []*entity.Expense) []TopExpenseResponse {
	response := make([]TopExpenseResponse, len(expenses))
	for i, e := range expenses {
		response[i] = TopExpenseResponse{
			ID:          e.ID.String(),
			CategoryID:  e.CategoryID.String(),
			Amount:      FormatAmount(e.Amount),
			PaymentMode: e.PaymentMode,
			Note:        e.Note,
			ReceiptURL:  e.ReceiptRef,
			SpentAt:     e.SpentAt,
			CreatedAt:   e.CreatedAt,
		}
	}
	return response
}
