package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fintracc/finance_tracker_app/internal/apperrors"
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/fintracc/finance_tracker_app/internal/middleware"
	"github.com/fintracc/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	cookieName         string
	cookieMaxAge       time.Duration
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, cfg *config.Config) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		cookieName:         cfg.SessionCookieName,
		cookieMaxAge:       cfg.SessionCookieMaxAge,
	}
}

// registerTransactionRoutes registers routes related to transactions. The
// create route is the only one reachable without a session cookie: it mints
// one. Everything else sits behind RequireSession.
func registerTransactionRoutes(r *gin.Engine, cfg *config.Config, ts portssvc.TransactionSvcFacade, writeLimiter gin.HandlerFunc) {
	h := newTransactionHandler(ts, cfg)

	txns := r.Group("/transactions")
	txns.POST("", writeLimiter, h.createTransaction)

	scoped := txns.Group("", middleware.RequireSession(cfg.SessionCookieName))
	{
		scoped.GET("", h.listTransactions)
		scoped.GET("/summary", h.getTransactionsSummary)
		scoped.GET("/:id", h.getTransaction)
	}
}

// createTransaction handles POST /transactions. A request without a session
// cookie gets a freshly minted opaque session id set as a cookie; the row is
// scoped to whichever session ends up applying.
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		respondValidationError(c, err)
		return
	}

	sessionID, err := c.Cookie(h.cookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(h.cookieName, sessionID, int(h.cookieMaxAge.Seconds()), "/", "", false, true)
		logger.Info("Minted new session", slog.String("session_id", sessionID))
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), sessionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: "Validation error",
				Issues: []dto.ValidationIssue{
					{Field: "amount", Rule: "positive", Message: err.Error()},
				},
			})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			respondInternalError(c)
		}
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.Status(http.StatusCreated)
}

// listTransactions handles GET /transactions: the filter/sort/paginate
// pipeline over the caller's session.
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		logger.Error("Session ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		respondValidationError(c, err)
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), sessionID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondValidationError(c, err)
			return
		}
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		respondInternalError(c)
		return
	}

	logger.Info("Transactions listed successfully",
		slog.Int("count", len(resp.Data)),
		slog.Int64("total", resp.Pagination.Total))
	c.JSON(http.StatusOK, resp)
}

// getTransaction handles GET /transactions/:id. A miss answers 200 with a
// null transaction, not 404; clients distinguish ownership misses and absent
// ids by neither.
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		logger.Error("Session ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var param dto.TransactionIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		logger.Warn("Invalid transaction id param", slog.String("error", err.Error()))
		respondValidationError(c, err)
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), sessionID, param.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.GetTransactionResponse{Transaction: nil})
			return
		}
		logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
		respondInternalError(c)
		return
	}

	resp := dto.ToTransactionResponse(txn)
	c.JSON(http.StatusOK, dto.GetTransactionResponse{Transaction: &resp})
}

// getTransactionsSummary handles GET /transactions/summary: the signed sum of
// the session's stored amounts, zero when there are none.
func (h *transactionHandler) getTransactionsSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		logger.Error("Session ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	summary, err := h.transactionService.GetTransactionsSummary(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to get transactions summary from service", slog.String("error", err.Error()))
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: dto.SummaryAmount{Amount: summary.Amount}})
}
