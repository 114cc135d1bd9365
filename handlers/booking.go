package handlers

import (
	"errors"
	"net/http"
	"time"

	"timeback/middleware"
	"timeback/models"
	"timeback/services/booking"
	"timeback/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const inFlightMessage = "Your request is already being submitted. Please wait a moment."

// BookingHandler serves the landing page and the booking form endpoints.
type BookingHandler struct {
	Submitter booking.BookingSubmitter
	Validator booking.FormValidator
	Content   models.SiteContent
}

func NewBookingHandler(submitter booking.BookingSubmitter, validator booking.FormValidator, content models.SiteContent) *BookingHandler {
	return &BookingHandler{
		Submitter: submitter,
		Validator: validator,
		Content:   content,
	}
}

// pageData is what index.tmpl renders.
type pageData struct {
	Content   models.SiteContent
	Mobile    bool
	Form      models.BookingForm
	Errors    booking.ValidationErrors
	Submitted bool
	Message   string
	OrderID   string
	MinDate   string
	Year      int
}

func (h *BookingHandler) page(c *gin.Context) pageData {
	return pageData{
		Content: h.Content,
		Mobile:  middleware.GetSession(c).Mobile,
		MinDate: h.Validator.MinServiceDate(),
		Year:    time.Now().Year(),
	}
}

// ShowPage renders the landing page with an empty booking form.
func (h *BookingHandler) ShowPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", h.page(c))
}

// SubmitForm handles the HTML form post. Failures re-render the form with
// the posted values so the customer can retry without retyping.
func (h *BookingHandler) SubmitForm(c *gin.Context) {
	logger := getLogger(c)
	data := h.page(c)

	var form models.BookingForm
	bindErr := c.ShouldBind(&form)
	data.Form = form
	if errs := h.Validator.Validate(form, bindErr); errs != nil {
		logger.Info("Booking form rejected", zap.Strings("fields", fieldNames(errs)))
		data.Errors = errs
		c.HTML(http.StatusUnprocessableEntity, "index.tmpl", data)
		return
	}

	session := booking.NewFormSession(middleware.GetSession(c).ID, form)
	err := h.Submitter.Submit(c.Request.Context(), session)
	switch {
	case errors.Is(err, booking.ErrSubmissionInFlight):
		data.Message = inFlightMessage
		c.HTML(http.StatusConflict, "index.tmpl", data)
	case err != nil:
		logger.Error("Booking submission failed", zap.Error(err))
		data.Form = session.Form
		data.Message = session.Message
		c.HTML(http.StatusBadGateway, "index.tmpl", data)
	default:
		data.Form = session.Form
		data.Submitted = session.Submitted()
		data.Message = session.Message
		data.OrderID = session.OrderID
		c.HTML(http.StatusOK, "index.tmpl", data)
	}
}

// SubmitJSON is the JSON variant of SubmitForm for script clients.
func (h *BookingHandler) SubmitJSON(c *gin.Context) {
	logger := getLogger(c)

	var form models.BookingForm
	bindErr := c.ShouldBindJSON(&form)
	if errs := h.Validator.Validate(form, bindErr); errs != nil {
		logger.Info("Booking request rejected", zap.Strings("fields", fieldNames(errs)))
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, "invalid booking request", errs)
		return
	}

	session := booking.NewFormSession(middleware.GetSession(c).ID, form)
	err := h.Submitter.Submit(c.Request.Context(), session)

	var subErr *booking.SubmissionError
	switch {
	case errors.Is(err, booking.ErrSubmissionInFlight):
		utils.JSONError(c, http.StatusConflict, inFlightMessage, "")
	case errors.As(err, &subErr):
		logger.Error("Booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, subErr.Message, "")
	case err != nil:
		logger.Error("Booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, session.Message, "")
	default:
		c.JSON(http.StatusOK, models.BookingResponse{
			OrderID: session.OrderID,
			Status:  string(session.State),
			Message: session.Message,
		})
	}
}

// GetContent returns the page copy as JSON.
func (h *BookingHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.Content)
}

func fieldNames(errs booking.ValidationErrors) []string {
	names := make([]string, 0, len(errs))
	for k := range errs {
		names = append(names, k)
	}
	return names
}
