package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// RequireSession creates a Gin middleware handler that rejects requests
// lacking the session cookie. The cookie value is an opaque token: it is not
// format-checked, only required to be present. On success the session ID is
// stored in the request context and the request logger is enriched with it.
func RequireSession(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			logger.Warn("Session cookie missing", slog.String("cookie", cookieName))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		// Store the session ID in the context (using standard context)
		ctxWithSession := context.WithValue(c.Request.Context(), sessionIDKey, sessionID)

		// Add session ID to the logger
		enrichedLogger := logger.With(slog.String("session_id", sessionID))
		ctxWithLoggerAndSession := context.WithValue(ctxWithSession, loggerCtxKey, enrichedLogger)

		// Update the request context
		c.Request = c.Request.WithContext(ctxWithLoggerAndSession)

		c.Next()
	}
}
