package controllers

import (
	"errors"
	"net/http"

	"unovation-backend/repositories"
	"unovation-backend/services"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login opens an admin session and returns its bearer token
func (ctl *Controller) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindJSON(c, "login", &input) {
		return
	}

	token, expiresAt, err := ctl.Sessions.Login(ctx(c), input.Username, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.Logger(c).Warn("admin login rejected", zap.String("username", input.Username))
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		utils.InternalError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Logout revokes the session the request was authenticated with
func (ctl *Controller) Logout(c *gin.Context) {
	if err := ctl.Sessions.Logout(ctx(c), c.GetString(utils.ContextSessionID)); err != nil {
		utils.InternalError(c, "logout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetLeadData returns every website submission grouped by form
func (ctl *Controller) GetLeadData(c *gin.Context) {
	data, err := ctl.Store.LeadData(ctx(c))
	if err != nil {
		utils.InternalError(c, "getLeadData", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// DeleteLead removes one submission. Unknown ids still succeed.
func (ctl *Controller) DeleteLead(c *gin.Context) {
	err := ctl.Store.DeleteLead(ctx(c), c.Param("type"), c.Param("id"))
	if errors.Is(err, repositories.ErrUnknownLeadKind) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record type")
		return
	}
	if err != nil {
		utils.InternalError(c, "deleteLead", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ConvertInquiry creates a client from a service inquiry
func (ctl *Controller) ConvertInquiry(c *gin.Context) {
	client, err := ctl.Store.ConvertInquiry(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "convertInquiry", err)
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Inquiry not found")
		return
	}

	utils.Logger(c).Info("inquiry converted to client",
		zap.String("inquiry_id", c.Param("id")),
		zap.String("client_id", client.ID),
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}
