// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/domain/entity"
)

// ExpenseRequest represents the request body for expense creation and update.
// Amount accepts a JSON number or a decimal string.
type ExpenseRequest struct {
	CategoryID  string          `json:"categoryId" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	Note        *string         `json:"note"`
	ReceiptURL  *string         `json:"receiptUrl"`
	SpentAt     time.Time       `json:"spentAt"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Amount       string    `json:"amount"`
	PaymentMode  string    `json:"paymentMode"`
	Note         *string   `json:"note"`
	ReceiptURL   *string   `json:"receiptUrl"`
	SpentAt      time.Time `json:"spentAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PagedExpenseResponse represents one page of an expense query.
type PagedExpenseResponse struct {
	Items      []ExpenseResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalCount int64             `json:"totalCount"`
}

// FormatAmount renders a money amount with two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// ToExpenseResponse converts a domain Expense and its category name to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense, categoryName string) ExpenseResponse {
	return ExpenseResponse{
		ID:           expense.ID.String(),
		CategoryID:   expense.CategoryID.String(),
		CategoryName: categoryName,
		Amount:       FormatAmount(expense.Amount),
		PaymentMode:  expense.PaymentMode,
		Note:         expense.Note,
		ReceiptURL:   expense.ReceiptRef,
		SpentAt:      expense.SpentAt,
		CreatedAt:    expense.CreatedAt,
	}
}

// ToPagedExpenseResponse converts a query page to its response DTO.
func ToPagedExpenseResponse(items []*entity.ExpenseWithCategory, page, pageSize int, totalCount int64) PagedExpenseResponse {
	response := PagedExpenseResponse{
		Items:      make([]ExpenseResponse, len(items)),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
	for i, item := range items {
		response.Items[i] = ToExpenseResponse(item.Expense, item.CategoryName)
	}
	return response
}
