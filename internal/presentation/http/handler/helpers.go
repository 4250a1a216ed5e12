package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	return c.GetString("user_role")
}

// GetUserPhone extracts the user phone from the Gin context
func GetUserPhone(c *gin.Context) string {
	return c.GetString("user_phone")
}

// IsAdmin checks if the authenticated user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == string(enum.UserRoleAdmin)
}
