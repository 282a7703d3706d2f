package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintracc/finance_tracker_app/internal/apperrors"
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/fintracc/finance_tracker_app/internal/middleware"
	"github.com/fintracc/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories. Both routes
// require an existing session.
func registerCategoryRoutes(r *gin.Engine, cfg *config.Config, cs portssvc.CategorySvcFacade, writeLimiter gin.HandlerFunc) {
	h := newCategoryHandler(cs)

	categories := r.Group("/categories", middleware.RequireSession(cfg.SessionCookieName))
	{
		categories.POST("", writeLimiter, h.createCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory handles POST /categories.
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		logger.Error("Session ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		respondValidationError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), sessionID, req)
	if err != nil {
		logger.Error("Failed to create category in service", slog.String("error", err.Error()))
		respondInternalError(c)
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	c.Status(http.StatusCreated)
}

// deleteCategory handles DELETE /categories/:id. A nonexistent id and another
// session's id both answer 404; revealing which would leak existence of
// foreign rows.
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		logger.Error("Session ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var param dto.CategoryIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		logger.Warn("Invalid category id param", slog.String("error", err.Error()))
		respondValidationError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), sessionID, param.ID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found for deletion", slog.String("category_id", param.ID))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Category not found"})
		} else {
			logger.Error("Failed to delete category in service", slog.String("error", err.Error()))
			respondInternalError(c)
		}
		return
	}

	logger.Info("Category deleted successfully", slog.String("category_id", param.ID))
	c.Status(http.StatusNoContent)
}
