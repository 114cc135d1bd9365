package booking

import "timeback/models"

// BuildPayload freezes a form into the notification payload. Empty notes
// become models.NotesSentinel; anything else is passed through verbatim.
func BuildPayload(form models.BookingForm, orderID string) models.Payload {
	notes := form.Notes
	if notes == "" {
		notes = models.NotesSentinel
	}
	return models.Payload{
		Name:            form.Name,
		Phone:           form.Phone,
		Email:           form.Email,
		Address:         form.Address,
		ServiceDate:     form.ServiceDate,
		PickupTime:      string(form.PickupTime),
		WashType:        string(form.WashType),
		LaundryBagCount: form.LaundryBagCount,
		Notes:           notes,
		OrderID:         orderID,
	}
}
