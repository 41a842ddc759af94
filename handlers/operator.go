package handlers

import (
	"errors"
	"net/http"

	operatorService "crewledger/services/operator"
	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OperatorHandler exposes account registration and session endpoints.
type OperatorHandler struct {
	Service operatorService.OperatorService
}

// RegisterOperatorHandler handles POST /auth/register.
func (h *OperatorHandler) RegisterOperatorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req operatorService.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, operatorService.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Operator registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginOperatorHandler handles POST /auth/login.
func (h *OperatorHandler) LoginOperatorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req operatorService.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, operatorService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Operator login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutOperatorHandler handles POST /auth/logout. It revokes the session
// token of the authenticated operator.
func (h *OperatorHandler) LogoutOperatorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("operatorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	idStr, ok := id.(string)
	if !ok {
		logger.Error("Invalid operator ID type", zap.Any("operatorID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid operator ID type"})
		return
	}
	if err := h.Service.RevokeToken(c.Request.Context(), idStr); err != nil {
		logger.Error("Token revocation failed", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetOperatorHandler handles GET /auth/me.
func (h *OperatorHandler) GetOperatorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("operatorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	idStr, ok := id.(string)
	if !ok {
		logger.Error("Invalid operator ID type", zap.Any("operatorID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid operator ID type"})
		return
	}
	op, err := h.Service.GetOperator(c.Request.Context(), idStr)
	if err != nil {
		logger.Error("Operator not found", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, op)
}
