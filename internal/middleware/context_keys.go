package middleware

import (
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and userRoleKey store the authenticated caller's identity claims
// in the request context.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetActorFromContext assembles the caller identity + role claim from the
// request context. The role defaults to CUSTOMER when the claim is missing,
// which grants nothing.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role := domain.RoleCustomer
	if roleVal, ok := c.Request.Context().Value(userRoleKey).(string); ok && domain.ValidUserRole(domain.UserRole(roleVal)) {
		role = domain.UserRole(roleVal)
	}
	return domain.Actor{UserID: userID, Role: role}, true
}
