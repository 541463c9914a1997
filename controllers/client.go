package controllers

import (
	"net/http"

	"unovation-backend/models"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateClientInput is the insert shape of a client
type CreateClientInput struct {
	Name          string  `json:"name" binding:"required"`
	Phone         string  `json:"phone" binding:"required,phone"`
	Email         *string `json:"email" binding:"omitempty,optemail"`
	Company       *string `json:"company"`
	ServiceNeeded string  `json:"serviceNeeded" binding:"required"`
	Source        string  `json:"source" binding:"required"`
}

// UpdateClientInput is the partial shape; nil fields are left unchanged
type UpdateClientInput struct {
	Name          *string `json:"name" binding:"omitempty,min=1"`
	Phone         *string `json:"phone" binding:"omitempty,phone"`
	Email         *string `json:"email" binding:"omitempty,optemail"`
	Company       *string `json:"company"`
	ServiceNeeded *string `json:"serviceNeeded" binding:"omitempty,min=1"`
	Source        *string `json:"source" binding:"omitempty,min=1"`
}

// CreateClient creates a new client
func (ctl *Controller) CreateClient(c *gin.Context) {
	var input CreateClientInput
	if !utils.BindJSON(c, "createClient", &input) {
		return
	}

	client := models.Client{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         nilIfEmpty(input.Email),
		Company:       nilIfEmpty(input.Company),
		ServiceNeeded: input.ServiceNeeded,
		Source:        input.Source,
	}
	if err := ctl.Store.Clients.Create(ctx(c), &client); err != nil {
		utils.InternalError(c, "createClient", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// GetClients lists every client, newest first
func (ctl *Controller) GetClients(c *gin.Context) {
	clients, err := ctl.Store.Clients.List(ctx(c))
	if err != nil {
		utils.InternalError(c, "getClients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func (ctl *Controller) GetClient(c *gin.Context) {
	client, err := ctl.Store.Clients.Get(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "getClient", err)
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient applies a partial update
func (ctl *Controller) UpdateClient(c *gin.Context) {
	var input UpdateClientInput
	if !utils.BindJSON(c, "updateClient", &input) {
		return
	}

	client, err := ctl.Store.Clients.Update(ctx(c), c.Param("id"), func(client *models.Client) {
		if input.Name != nil {
			client.Name = *input.Name
		}
		if input.Phone != nil {
			client.Phone = *input.Phone
		}
		if input.Email != nil {
			client.Email = nilIfEmpty(input.Email)
		}
		if input.Company != nil {
			client.Company = nilIfEmpty(input.Company)
		}
		if input.ServiceNeeded != nil {
			client.ServiceNeeded = *input.ServiceNeeded
		}
		if input.Source != nil {
			client.Source = *input.Source
		}
	})
	if err != nil {
		utils.InternalError(c, "updateClient", err)
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// DeleteClient removes a client and its pipeline records
func (ctl *Controller) DeleteClient(c *gin.Context) {
	if err := ctl.Store.DeleteClient(ctx(c), c.Param("id")); err != nil {
		utils.InternalError(c, "deleteClient", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
