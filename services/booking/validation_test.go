package booking

import (
	"errors"
	"testing"
	"time"

	"timeback/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func testValidator() FormValidator {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}
	v := NewFormValidator(loc)
	// 23:30 local on 2026-10-18.
	v.Now = func() time.Time { return time.Date(2026, 10, 18, 23, 30, 0, 0, loc) }
	return v
}

func validate(v FormValidator, form models.BookingForm) ValidationErrors {
	return v.Validate(form, binding.Validator.ValidateStruct(form))
}

func TestMinServiceDate(t *testing.T) {
	assert.Equal(t, "2026-10-19", testValidator().MinServiceDate())
}

func TestValidateAcceptsValidForm(t *testing.T) {
	assert.Nil(t, validate(testValidator(), sampleForm()))
}

func TestValidateServiceDate(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{date: "2026-10-18", wantErr: true},
		{date: "2026-10-17", wantErr: true},
		{date: "2026-10-19", wantErr: false},
		{date: "10/19/2026", wantErr: true},
		{date: "mm/dd/yyyy", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			form := sampleForm()
			form.ServiceDate = tt.date
			errs := validate(testValidator(), form)
			if tt.wantErr {
				assert.Contains(t, errs, "serviceDate")
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingForm)
		field  string
		msg    string
	}{
		{name: "missing name", mutate: func(f *models.BookingForm) { f.Name = "" }, field: "name", msg: "This field is required."},
		{name: "blank name", mutate: func(f *models.BookingForm) { f.Name = "   " }, field: "name", msg: "This field is required."},
		{name: "missing phone", mutate: func(f *models.BookingForm) { f.Phone = "" }, field: "phone", msg: "This field is required."},
		{name: "missing address", mutate: func(f *models.BookingForm) { f.Address = "" }, field: "address", msg: "This field is required."},
		{name: "bad email", mutate: func(f *models.BookingForm) { f.Email = "jane.example.com" }, field: "email", msg: "Enter a valid email address."},
		{name: "unknown pickup", mutate: func(f *models.BookingForm) { f.PickupTime = "midnight" }, field: "pickupTime", msg: "Choose one of the listed options."},
		{name: "missing wash type", mutate: func(f *models.BookingForm) { f.WashType = "" }, field: "washType", msg: "This field is required."},
		{name: "unknown wash type", mutate: func(f *models.BookingForm) { f.WashType = "starch" }, field: "washType", msg: "Choose one of the listed options."},
		{name: "bag count text", mutate: func(f *models.BookingForm) { f.LaundryBagCount = "two" }, field: "laundryBagCount", msg: "Enter a number."},
		{name: "bag count zero", mutate: func(f *models.BookingForm) { f.LaundryBagCount = "0" }, field: "laundryBagCount", msg: "Enter between 1 and 99 bags."},
		{name: "bag count large", mutate: func(f *models.BookingForm) { f.LaundryBagCount = "150" }, field: "laundryBagCount", msg: "Enter between 1 and 99 bags."},
		{name: "missing date", mutate: func(f *models.BookingForm) { f.ServiceDate = "" }, field: "serviceDate", msg: "This field is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := sampleForm()
			tt.mutate(&form)
			errs := validate(testValidator(), form)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestValidateNotesOptional(t *testing.T) {
	form := sampleForm()
	form.Notes = ""
	assert.Nil(t, validate(testValidator(), form))
}

func TestValidateUnreadableForm(t *testing.T) {
	errs := testValidator().Validate(models.BookingForm{}, errors.New("unexpected EOF"))
	assert.Equal(t, ValidationErrors{"form": "We couldn't read the submitted form. Please try again."}, errs)
}

func TestValidationErrorsString(t *testing.T) {
	errs := ValidationErrors{"phone": "b", "email": "a"}
	assert.Equal(t, "invalid booking form: email: a; phone: b", errs.Error())
}
