package models

// PickupWindow is one of the fixed pickup time slots offered on the form.
type PickupWindow string

const (
	PickupMorning   PickupWindow = "9am-12pm"
	PickupMidday    PickupWindow = "12pm-3pm"
	PickupAfternoon PickupWindow = "3pm-6pm"
	PickupEvening   PickupWindow = "6pm-8pm"
)

// WashType is the detergent preference for a load.
type WashType string

const (
	WashScented        WashType = "scented"
	WashUnscented      WashType = "unscented"
	WashHypoallergenic WashType = "hypoallergenic"
)

// NotesSentinel replaces empty notes in outbound notifications.
const NotesSentinel = "None provided"

// BookingForm is the booking request as posted by the browser.
type BookingForm struct {
	Name            string       `form:"name" json:"name" binding:"required,max=120"`                                             // Customer full name
	Phone           string       `form:"phone" json:"phone" binding:"required,max=40"`                                            // Contact phone
	Address         string       `form:"address" json:"address" binding:"required,max=250"`                                       // Pickup address
	Email           string       `form:"email" json:"email" binding:"required,email"`                                             // Customer email, receives the confirmation
	ServiceDate     string       `form:"serviceDate" json:"serviceDate" binding:"required"`                                       // "YYYY-MM-DD", tomorrow or later
	PickupTime      PickupWindow `form:"pickupTime" json:"pickupTime" binding:"required,oneof=9am-12pm 12pm-3pm 3pm-6pm 6pm-8pm"` // Pickup slot
	WashType        WashType     `form:"washType" json:"washType" binding:"required,oneof=scented unscented hypoallergenic"`      // Detergent preference
	LaundryBagCount string       `form:"laundryBagCount" json:"laundryBagCount" binding:"required,numeric"`                       // Number of bags, kept as entered
	Notes           string       `form:"notes" json:"notes" binding:"max=2000"`                                                   // Optional instructions
	OrderID         string       `form:"-" json:"orderId,omitempty"`                                                              // Set at submit time only
}

// Payload is the immutable notification body built from a form at submit time.
type Payload struct {
	Name            string
	Phone           string
	Email           string
	Address         string
	ServiceDate     string
	PickupTime      string
	WashType        string
	LaundryBagCount string
	Notes           string
	OrderID         string
}

// Params flattens the payload into the field-name to value mapping the
// email templates expect. Each call returns a fresh map.
func (p Payload) Params() map[string]string {
	return map[string]string{
		"name":            p.Name,
		"phone":           p.Phone,
		"email":           p.Email,
		"address":         p.Address,
		"serviceDate":     p.ServiceDate,
		"pickupTime":      p.PickupTime,
		"washType":        p.WashType,
		"laundryBagCount": p.LaundryBagCount,
		"notes":           p.Notes,
		"orderId":         p.OrderID,
	}
}

// BookingResponse is returned by the JSON booking endpoint on success.
type BookingResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
