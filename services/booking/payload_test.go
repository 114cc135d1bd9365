package booking

import (
	"testing"

	"timeback/models"

	"github.com/stretchr/testify/assert"
)

func sampleForm() models.BookingForm {
	return models.BookingForm{
		Name:            "Jane Doe",
		Phone:           "5551234567",
		Address:         "1 Main St",
		Email:           "jane@example.com",
		ServiceDate:     "2099-01-01",
		PickupTime:      models.PickupMorning,
		WashType:        models.WashScented,
		LaundryBagCount: "2",
	}
}

func TestBuildPayloadNotesSentinel(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{name: "empty", notes: "", want: "None provided"},
		{name: "verbatim", notes: "Stain on blue shirt", want: "Stain on blue shirt"},
		{name: "whitespace kept", notes: "  ", want: "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := sampleForm()
			form.Notes = tt.notes
			assert.Equal(t, tt.want, BuildPayload(form, "TB-1-ABCDEF").Notes)
		})
	}
}

func TestBuildPayloadCopiesFields(t *testing.T) {
	p := BuildPayload(sampleForm(), "TB-1-ABCDEF")

	assert.Equal(t, map[string]string{
		"name":            "Jane Doe",
		"phone":           "5551234567",
		"email":           "jane@example.com",
		"address":         "1 Main St",
		"serviceDate":     "2099-01-01",
		"pickupTime":      "9am-12pm",
		"washType":        "scented",
		"laundryBagCount": "2",
		"notes":           "None provided",
		"orderId":         "TB-1-ABCDEF",
	}, p.Params())
}

func TestPayloadParamsReturnsFreshMap(t *testing.T) {
	p := BuildPayload(sampleForm(), "TB-1-ABCDEF")
	first := p.Params()
	first["name"] = "changed"
	assert.Equal(t, "Jane Doe", p.Params()["name"])
}
