// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trackify/backend/internal/application/usecase/expense"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	queryUseCase  *expense.QueryExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	queryUseCase *expense.QueryExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		queryUseCase:  queryUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	input, err := c.parseQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Code:    string(domainerror.ErrCodeInvalidQuery),
			Details: err.Error(),
		})
		return
	}
	input.Scope = valueobject.ResolveScope(actor)

	output, err := c.queryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPagedExpenseResponse(output.Items, output.Page, output.PageSize, output.TotalCount))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Scope:         valueobject.ResolveScope(actor),
		ExpenseFields: fields,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense, output.CategoryName))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:     ctx.Param("id"),
		Scope:         valueobject.ResolveScope(actor),
		ExpenseFields: fields,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	if !output.Updated {
		c.notFound(ctx)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: ctx.Param("id"),
		Scope:     valueobject.ResolveScope(actor),
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}
	if !output.Deleted {
		c.notFound(ctx)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseQuery reads the filter, sort and page parameters of a listing.
func (c *ExpenseController) parseQuery(ctx *gin.Context) (expense.QueryExpensesInput, error) {
	var input expense.QueryExpensesInput
	var err error

	if raw := ctx.Query("page"); raw != "" {
		if input.Page, err = strconv.Atoi(raw); err != nil {
			return input, errors.New("page must be an integer")
		}
	}
	if raw := ctx.Query("pageSize"); raw != "" {
		if input.PageSize, err = strconv.Atoi(raw); err != nil {
			return input, errors.New("pageSize must be an integer")
		}
	}
	if input.From, err = parseQueryTime(ctx.Query("from"), false); err != nil {
		return input, errors.New("from must be a date or RFC 3339 timestamp")
	}
	if input.To, err = parseQueryTime(ctx.Query("to"), true); err != nil {
		return input, errors.New("to must be a date or RFC 3339 timestamp")
	}
	if raw, ok := ctx.GetQuery("categoryId"); ok && raw != "" {
		input.CategoryID = &raw
	}
	if input.Min, err = parseQueryDecimal(ctx.Query("min")); err != nil {
		return input, errors.New("min must be a decimal number")
	}
	if input.Max, err = parseQueryDecimal(ctx.Query("max")); err != nil {
		return input, errors.New("max must be a decimal number")
	}
	input.Sort = ctx.Query("sort")

	return input, nil
}

// bindFields binds the request body onto the editable expense fields.
func (c *ExpenseController) bindFields(ctx *gin.Context) (expense.ExpenseFields, bool) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return expense.ExpenseFields{}, false
	}

	return expense.ExpenseFields{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		Note:        req.Note,
		ReceiptRef:  req.ReceiptURL,
		SpentAt:     req.SpentAt,
	}, true
}

func (c *ExpenseController) notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: "Expense not found",
		Code:  string(domainerror.ErrCodeExpenseNotFound),
	})
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	slog.Error("Expense request failed", "error", err, "path", ctx.FullPath())
	internalError(ctx)
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodePaymentModeTooLong,
		domainerror.ErrCodeNoteTooLong,
		domainerror.ErrCodeMissingSpentAt,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidQuery,
		domainerror.ErrCodeInvalidCategoryReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
