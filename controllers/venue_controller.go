package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-backend/models"
)

// GetEventTypes (GET /api/event-types)
func GetEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.EventTypeCatalogue())
}

// GetVenueDetails (GET /api/venue)
func GetVenueDetails(c *gin.Context) {
	c.JSON(http.StatusOK, models.Venue())
}
