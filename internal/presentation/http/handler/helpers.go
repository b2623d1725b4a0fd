package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
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

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetCashier builds the acting cashier from the authenticated context.
// Returns nil when the request is unauthenticated.
func GetCashier(c *gin.Context) *repository.Cashier {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}
	return &repository.Cashier{
		ID:    *userID,
		Email: GetUserEmail(c),
	}
}
