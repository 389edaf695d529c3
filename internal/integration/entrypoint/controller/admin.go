// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackify/backend/internal/application/usecase/admin"
	"github.com/trackify/backend/internal/integration/entrypoint/dto"
)

// AdminController handles administrator endpoints.
type AdminController struct {
	listAccountsUseCase *admin.ListAccountsUseCase
	statsUseCase        *admin.GetStatsUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(listAccountsUseCase *admin.ListAccountsUseCase, statsUseCase *admin.GetStatsUseCase) *AdminController {
	return &AdminController{
		listAccountsUseCase: listAccountsUseCase,
		statsUseCase:        statsUseCase,
	}
}

// Users handles GET /admin/users requests.
func (c *AdminController) Users(ctx *gin.Context) {
	output, err := c.listAccountsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to list accounts", "error", err)
		internalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Accounts))
}

// Stats handles GET /admin/stats requests.
func (c *AdminController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to count records", "error", err)
		internalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminStatsResponse{
		Users:      output.Accounts,
		Categories: output.Categories,
		Expenses:   output.Expenses,
	})
}
