package middleware

import (
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys used to store the authenticated caller in the request context.
const (
	userIDKey      = contextKey("userID")
	accountTypeKey = contextKey("accountType")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetAccountTypeFromContext retrieves the caller's account type, which selects
// the bid tier quotes are validated against.
func GetAccountTypeFromContext(c *gin.Context) (domain.AccountType, bool) {
	accountType, ok := c.Request.Context().Value(accountTypeKey).(domain.AccountType)
	return accountType, ok
}
