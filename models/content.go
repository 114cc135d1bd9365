package models

// Service is one priced offering shown on the landing page.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Icon        string `json:"icon"` // Static asset name
}

// Testimonial is a customer quote. Rating, when set, is 1..5.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating,omitempty"`
}

// Stars returns a fixed-length filled/empty mask for template rendering.
func (t Testimonial) Stars() []bool {
	stars := make([]bool, 5)
	for i := 0; i < t.Rating && i < 5; i++ {
		stars[i] = true
	}
	return stars
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Contact struct {
	Owner string `json:"owner"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Area  string `json:"area"`
}

// Option is a select-box entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SiteContent is everything the landing page renders besides the form.
type SiteContent struct {
	BusinessName  string        `json:"businessName"`
	Tagline       string        `json:"tagline"`
	About         []string      `json:"about"`
	Services      []Service     `json:"services"`
	Features      []string      `json:"features"`
	Contact       Contact       `json:"contact"`
	Hours         string        `json:"hours"`
	Testimonials  []Testimonial `json:"testimonials"`
	FAQ           []FAQ         `json:"faq"`
	PickupWindows []Option      `json:"pickupWindows"`
	WashTypes     []Option      `json:"washTypes"`
}

// DefaultContent returns the TimeBack Wash & Fold page copy.
func DefaultContent() SiteContent {
	return SiteContent{
		BusinessName: "TimeBack Wash & Fold",
		Tagline:      "Buy back your time, one load at a time.",
		About: []string{
			"New in 2025! TimeBack Wash and Fold was created by a local stay-at-home mom who understands the daily juggle of family life. We're here to serve the Cave Spring, VA area with one simple mission: give you your time back.",
			"Whether you're a busy parent, working professional, or anyone who'd rather spend their time on what matters most, let us handle the laundry while you focus on living your life.",
		},
		Services: []Service{
			{
				Title:       "Wash & Fold",
				Description: "Professional washing, drying, and folding of your everyday clothes",
				Price:       "$2.00/lb • $35.00 for 13 gallon bag",
				Icon:        "shirt",
			},
			{
				Title:       "Pickup & Delivery",
				Description: "Convenient doorstep service - we come to you!",
				Price:       "Free over $35 • $10 below $35",
				Icon:        "truck",
			},
		},
		Features: []string{
			"Same-day service available",
			"Hypoallergenic options",
			"24-hour turnaround",
			"Quality guarantee",
		},
		Contact: Contact{
			Owner: "Kinsey Kahl",
			Phone: "(540) 580-4969",
			Email: "timebackwashandfold@gmail.com",
			Area:  "Serving Your Neighborhood",
		},
		Hours: "Mon-Fri 9AM-7PM | Sat-Sun 10AM-5PM",
		Testimonials: []Testimonial{
			{ID: "t1", Name: "Megan R.", Location: "Cave Spring", Quote: "Picked up in the morning, back folded by dinner. I got my Saturday back.", Rating: 5},
			{ID: "t2", Name: "Chris P.", Location: "Roanoke", Quote: "Hypoallergenic option is a lifesaver for my kids' sensitive skin.", Rating: 5},
			{ID: "t3", Name: "Dana L.", Quote: "Friendly, on time, and everything smelled great.", Rating: 4},
		},
		FAQ: []FAQ{
			{Question: "How is pricing calculated?", Answer: "Wash & fold is $2.00 per pound, or $35.00 for a full 13 gallon bag."},
			{Question: "Is pickup and delivery free?", Answer: "Pickup and delivery is free on orders over $35 and $10 below that."},
			{Question: "How soon will I get my laundry back?", Answer: "Most orders come back within 24 hours. Same-day service is available on request."},
			{Question: "Can I request a specific detergent?", Answer: "Choose scented, unscented, or hypoallergenic on the booking form and add any special instructions in the notes."},
			{Question: "What happens after I submit a request?", Answer: "You'll receive a confirmation email with your order number and we'll contact you to confirm your pickup."},
		},
		PickupWindows: []Option{
			{Value: string(PickupMorning), Label: "9 AM - 12 PM"},
			{Value: string(PickupMidday), Label: "12 PM - 3 PM"},
			{Value: string(PickupAfternoon), Label: "3 PM - 6 PM"},
			{Value: string(PickupEvening), Label: "6 PM - 8 PM"},
		},
		WashTypes: []Option{
			{Value: string(WashScented), Label: "Scented"},
			{Value: string(WashUnscented), Label: "Unscented"},
			{Value: string(WashHypoallergenic), Label: "Hypoallergenic"},
		},
	}
}
