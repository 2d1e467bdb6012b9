package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"venue-backend/models"
	"venue-backend/services"
	"venue-backend/utils"
)

type InquiryController struct {
	InquirySvc *services.InquiryService
	log        zerolog.Logger
}

func NewInquiryController(svc *services.InquiryService, log zerolog.Logger) *InquiryController {
	return &InquiryController{
		InquirySvc: svc,
		log:        log.With().Str("component", "contact").Logger(),
	}
}

// SubmitInquiry (POST /api/contact) relays one contact-form submission to
// the venue operator's inbox.
func (ctrl *InquiryController) SubmitInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ctrl.InquirySvc.Send(c.Request.Context(), &inquiry); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		// Transport detail stays in the log; the caller gets a generic body.
		ctrl.log.Error().Err(err).Msg("contact form error")
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send email")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Email sent successfully")
}
