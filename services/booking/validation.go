package booking

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"timeback/models"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout  = "2006-01-02"
	maxBagCount = 99
)

// ValidationErrors maps a form field key to a message for the user.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "invalid booking form: " + strings.Join(parts, "; ")
}

// FormValidator applies the input-layer rules the submitter relies on.
type FormValidator struct {
	Now      func() time.Time
	Location *time.Location
}

func NewFormValidator(loc *time.Location) FormValidator {
	if loc == nil {
		loc = time.Local
	}
	return FormValidator{Now: time.Now, Location: loc}
}

func (v FormValidator) tomorrow() time.Time {
	now := v.Now().In(v.Location)
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, v.Location)
}

// MinServiceDate is the earliest bookable date as YYYY-MM-DD.
func (v FormValidator) MinServiceDate() string {
	return v.tomorrow().Format(dateLayout)
}

// Validate combines the binding error from gin with the date and bag-count
// rules. It returns nil when the form is acceptable.
func (v FormValidator) Validate(form models.BookingForm, bindErr error) ValidationErrors {
	errs := ValidationErrors{}

	if bindErr != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(bindErr, &fieldErrs) {
			errs["form"] = "We couldn't read the submitted form. Please try again."
			return errs
		}
		for _, fe := range fieldErrs {
			key := fieldKey(fe.Field())
			if _, seen := errs[key]; !seen {
				errs[key] = messageFor(fe.Tag())
			}
		}
	}

	requireText := func(key, value string) {
		if _, seen := errs[key]; !seen && strings.TrimSpace(value) == "" {
			errs[key] = messageFor("required")
		}
	}
	requireText("name", form.Name)
	requireText("phone", form.Phone)
	requireText("address", form.Address)

	if _, seen := errs["serviceDate"]; !seen {
		date, err := time.ParseInLocation(dateLayout, form.ServiceDate, v.Location)
		switch {
		case err != nil:
			errs["serviceDate"] = "Enter a date as YYYY-MM-DD."
		case date.Before(v.tomorrow()):
			errs["serviceDate"] = "Choose a date from " + v.MinServiceDate() + " onward."
		}
	}

	if _, seen := errs["laundryBagCount"]; !seen {
		n, err := strconv.Atoi(strings.TrimSpace(form.LaundryBagCount))
		if err != nil || n < 1 || n > maxBagCount {
			errs["laundryBagCount"] = "Enter between 1 and 99 bags."
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func fieldKey(field string) string {
	if field == "" {
		return "form"
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return "Choose one of the listed options."
	case "numeric":
		return "Enter a number."
	case "max":
		return "This entry is too long."
	default:
		return "This value is not valid."
	}
}
