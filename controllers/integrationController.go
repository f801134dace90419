package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"janawaaz-be/services"
)

type IntegrationController struct {
	client *services.IntegrationClient
}

func NewIntegrationController(client *services.IntegrationClient) *IntegrationController {
	return &IntegrationController{client: client}
}

// ListIntegrations returns the external ministry portals, optionally filtered
// by ministry.
func (ctrl *IntegrationController) ListIntegrations(c *gin.Context) {
	ministry := c.Query("ministry")
	c.JSON(http.StatusOK, gin.H{"integrations": ctrl.client.List(ministry)})
}

// SyncIntegration pulls issue records from an external ministry system
func (ctrl *IntegrationController) SyncIntegration(c *gin.Context) {
	id := c.Param("id")

	issues, err := ctrl.client.Sync(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Integration not found"})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Sync failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sync completed",
		"issues":  issues,
	})
}

// TestIntegrationConnection probes an external ministry system
func (ctrl *IntegrationController) TestIntegrationConnection(c *gin.Context) {
	id := c.Param("id")

	ok, err := ctrl.client.TestConnection(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Integration not found"})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Connection test failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": ok})
}
