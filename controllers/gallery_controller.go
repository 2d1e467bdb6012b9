package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-backend/services"
)

type GalleryController struct {
	GallerySvc *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{GallerySvc: svc}
}

// GetGallery (GET /api/gallery) lists the gallery images, alphabetical by
// default, shuffled with ?order=shuffle.
func (ctrl *GalleryController) GetGallery(c *gin.Context) {
	shuffle := c.Query("order") == "shuffle"
	c.JSON(http.StatusOK, gin.H{"images": ctrl.GallerySvc.List(shuffle)})
}
