// File: timeback/handlers/handlerBundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	ShowPage   gin.HandlerFunc
	SubmitForm gin.HandlerFunc

	// API endpoints
	SubmitBooking gin.HandlerFunc
	GetContent    gin.HandlerFunc
	Health        gin.HandlerFunc
}

// NewHandlerBundle wires the booking handler into a bundle.
func NewHandlerBundle(bh *BookingHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		ShowPage:      bh.ShowPage,
		SubmitForm:    bh.SubmitForm,
		SubmitBooking: bh.SubmitJSON,
		GetContent:    bh.GetContent,
		Health:        health,
	}
}
