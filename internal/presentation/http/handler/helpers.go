package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := val.(uint)
	return userID, ok
}

// GetUserRole extracts the authenticated user role from the Gin context
func GetUserRole(c *gin.Context) string {
	val, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, _ := val.(string)
	return role
}

// ParseIDParam parses a numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ParseDateQuery parses an optional YYYY-MM-DD query parameter
func ParseDateQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
