package handlers

import (
	"errors"
	"net/http"

	"isp_billing_backend/internal/services"
	"isp_billing_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// CreateClient handles the creation of a new client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.ClientFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateClient: Failed to bind JSON")
		utils.RespondBadRequest(c, "Invalid request payload")
		return
	}

	client, err := h.clientService.CreateClient(req)
	if err != nil {
		utils.LogError(err, "CreateClient: Error from clientService.CreateClient")
		if errors.Is(err, services.ErrClientValidation) {
			utils.RespondBadRequest(c, err.Error())
		} else {
			utils.RespondInternalError(c, "Failed to create client")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// GetClients handles fetching all clients, most recently created first.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetClients()
	if err != nil {
		utils.LogError(err, "GetClients: Error from clientService.GetClients")
		utils.RespondInternalError(c, "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// UpdateClient handles a full update of every editable field of a client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondBadRequest(c, "Invalid client ID format")
		return
	}

	var req services.ClientFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateClient: Failed to bind JSON")
		utils.RespondBadRequest(c, "Invalid request payload")
		return
	}

	if err := h.clientService.UpdateClient(clientID, req); err != nil {
		utils.LogError(err, "UpdateClient: Error from clientService.UpdateClient for ID "+utils.Int64ToStr(clientID))
		switch {
		case errors.Is(err, services.ErrClientValidation):
			utils.RespondBadRequest(c, err.Error())
		case errors.Is(err, services.ErrClientNotFound):
			utils.RespondNotFound(c, "Client not found")
		default:
			utils.RespondInternalError(c, "Failed to update client")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateClientStatus handles the status-only update of a client.
func (h *ClientHandler) UpdateClientStatus(c *gin.Context) {
	clientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondBadRequest(c, "Invalid client ID format")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateClientStatus: Failed to bind JSON")
		utils.RespondBadRequest(c, "Invalid request payload")
		return
	}

	if err := h.clientService.UpdateClientStatus(clientID, req.Status); err != nil {
		utils.LogError(err, "UpdateClientStatus: Error from clientService.UpdateClientStatus for ID "+utils.Int64ToStr(clientID))
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondBadRequest(c, err.Error())
		case errors.Is(err, services.ErrClientNotFound):
			utils.RespondNotFound(c, "Client not found")
		default:
			utils.RespondInternalError(c, "Failed to update client status")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateAllDueDates applies one due date to every client record.
func (h *ClientHandler) UpdateAllDueDates(c *gin.Context) {
	var req struct {
		DueDate string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateAllDueDates: Failed to bind JSON")
		utils.RespondBadRequest(c, "Invalid request payload")
		return
	}

	count, err := h.clientService.UpdateAllDueDates(req.DueDate)
	if err != nil {
		utils.LogError(err, "UpdateAllDueDates: Error from clientService.UpdateAllDueDates")
		if errors.Is(err, services.ErrClientValidation) {
			utils.RespondBadRequest(c, err.Error())
		} else {
			utils.RespondInternalError(c, "Failed to update due dates")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updatedCount": count})
}

// DeleteClient handles deleting a client.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondBadRequest(c, "Invalid client ID format")
		return
	}

	if err := h.clientService.DeleteClient(clientID); err != nil {
		utils.LogError(err, "DeleteClient: Error from clientService.DeleteClient for ID "+utils.Int64ToStr(clientID))
		if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondNotFound(c, "Client not found")
		} else {
			utils.RespondInternalError(c, "Failed to delete client")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
