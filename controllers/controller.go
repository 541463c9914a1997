package controllers

import (
	"context"
	"net/http"
	"strings"

	"unovation-backend/repositories"
	"unovation-backend/services"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
)

// Controller holds what the handlers need. Forwarder may be nil.
type Controller struct {
	Store     *repositories.Store
	Sessions  *services.SessionService
	Forwarder *services.Forwarder
}

func New(store *repositories.Store, sessions *services.SessionService, forwarder *services.Forwarder) *Controller {
	return &Controller{Store: store, Sessions: sessions, Forwarder: forwarder}
}

// nilIfEmpty maps a blank optional field to NULL.
func nilIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// requireClient answers 400 when clientID names no client. It reports
// whether the handler may continue.
func (ctl *Controller) requireClient(c *gin.Context, op, clientID string) bool {
	client, err := ctl.Store.Clients.Get(c.Request.Context(), clientID)
	if err != nil {
		utils.InternalError(c, op, err)
		return false
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		return false
	}
	return true
}

func ctx(c *gin.Context) context.Context {
	return c.Request.Context()
}
