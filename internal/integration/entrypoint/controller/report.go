// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trackify/backend/internal/application/usecase/report"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/entrypoint/dto"
)

// ReportController handles aggregation report endpoints.
type ReportController struct {
	monthlyUseCase    *report.MonthlyTotalsUseCase
	byCategoryUseCase *report.CategoryTotalsUseCase
	dailyUseCase      *report.DailyTrendUseCase
	topUseCase        *report.TopExpensesUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlyUseCase *report.MonthlyTotalsUseCase,
	byCategoryUseCase *report.CategoryTotalsUseCase,
	dailyUseCase *report.DailyTrendUseCase,
	topUseCase *report.TopExpensesUseCase,
) *ReportController {
	return &ReportController{
		monthlyUseCase:    monthlyUseCase,
		byCategoryUseCase: byCategoryUseCase,
		dailyUseCase:      dailyUseCase,
		topUseCase:        topUseCase,
	}
}

// Monthly handles GET /reports/monthly requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	year, ok := c.intParam(ctx, "year", 0)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.MonthlyTotalsInput{
		Scope: valueobject.ResolveScope(actor),
		Year:  year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTotalsResponse(output.Totals))
}

// ByCategory handles GET /reports/by-category requests.
func (c *ReportController) ByCategory(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	from, to, ok := c.rangeParams(ctx)
	if !ok {
		return
	}

	output, err := c.byCategoryUseCase.Execute(ctx.Request.Context(), report.CategoryTotalsInput{
		Scope: valueobject.ResolveScope(actor),
		From:  from,
		To:    to,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(output.Totals))
}

// DailyTrend handles GET /reports/daily-trend requests.
func (c *ReportController) DailyTrend(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	from, to, ok := c.rangeParams(ctx)
	if !ok {
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.DailyTrendInput{
		Scope: valueobject.ResolveScope(actor),
		From:  from,
		To:    to,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyTotalsResponse(output.Totals))
}

// TopExpenses handles GET /reports/top-expenses requests.
func (c *ReportController) TopExpenses(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	limit, ok := c.intParam(ctx, "limit", report.DefaultTopLimit)
	if !ok {
		return
	}

	output, err := c.topUseCase.Execute(ctx.Request.Context(), report.TopExpensesInput{
		Scope: valueobject.ResolveScope(actor),
		Limit: limit,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopExpensesResponse(output.Expenses))
}

// intParam reads an optional integer query parameter.
func (c *ReportController) intParam(ctx *gin.Context, name string, fallback int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.invalidParam(ctx, name+" must be an integer")
		return 0, false
	}
	return value, true
}

// rangeParams reads the optional from and to parameters.
func (c *ReportController) rangeParams(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	from, err := parseQueryTime(ctx.Query("from"), false)
	if err != nil {
		c.invalidParam(ctx, "from must be a date or RFC 3339 timestamp")
		return nil, nil, false
	}
	to, err := parseQueryTime(ctx.Query("to"), true)
	if err != nil {
		c.invalidParam(ctx, "to must be a date or RFC 3339 timestamp")
		return nil, nil, false
	}
	return from, to, true
}

func (c *ReportController) invalidParam(ctx *gin.Context, details string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid query parameters",
		Code:    string(domainerror.ErrCodeInvalidReportParam),
		Details: details,
	})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	slog.Error("Report request failed", "error", err, "path", ctx.FullPath())
	internalError(ctx)
}
