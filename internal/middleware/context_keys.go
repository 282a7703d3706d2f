package middleware

import "github.com/gin-gonic/gin"

// sessionIDKey is the key used to store the caller's session ID in the
// request context.
const sessionIDKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the caller's session ID from the Gin
// context. It returns the session ID and a boolean indicating if it was found.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionIDVal := c.Request.Context().Value(sessionIDKey)
	if sessionIDVal == nil {
		return "", false
	}

	sessionID, ok := sessionIDVal.(string)
	if !ok || sessionID == "" {
		return "", false
	}

	return sessionID, true
}
