package domain

type StarRating string

const (
	ThreeStar    StarRating = "3*"
	FourStar     StarRating = "4*"
	FiveStar     StarRating = "5*"
	ResortRating StarRating = "Resort"
	BudgetRating StarRating = "Budget"
)

type MealPlan string

const (
	MealBreakfast    MealPlan = "BREAKFAST"
	MealHalfBoard    MealPlan = "HALF BOARD"
	MealFullBoard    MealPlan = "FULL BOARD"
	MealAllInclusive MealPlan = "ALL INCLUSIVE"
)

type TransferPlan string

const (
	TransferPrivate TransferPlan = "PRIVATE"
	TransferShared  TransferPlan = "SHARED"
	TransferSIC     TransferPlan = "SIC"
)

// Day is one entry of the day-by-day plan. DayNumber is dense and 1-based;
// it always tracks the item's position and is recomputed by the collection
// editor, never hand-edited.
type Day struct {
	DayNumber       int    `json:"dayNumber"`
	Date            string `json:"date,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TicketInclusion string `json:"ticketInclusion,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

func (d *Day) SetOrdinal(n int) { d.DayNumber = n }

// HotelNight is one night of accommodation. NightNumber carries the same
// dense 1-based invariant as Day.DayNumber.
type HotelNight struct {
	NightNumber     int        `json:"nightNumber"`
	Location        string     `json:"location"`
	CheckInDate     string     `json:"checkInDate"`
	Name            string     `json:"name"`
	StarRating      StarRating `json:"starRating"`
	RoomType        string     `json:"roomType"`
	NumberOfRooms   int        `json:"numberOfRooms"`
	PaxDistribution string     `json:"paxDistribution"`
	MealPlan        MealPlan   `json:"mealPlan"`
	ImageURL        string     `json:"imageUrl,omitempty"`
}

func (h *HotelNight) SetOrdinal(n int) { h.NightNumber = n }

// TransportEntry has no positional identity beyond list order.
type TransportEntry struct {
	Day                string `json:"day"`
	ServiceDescription string `json:"serviceDescription"`
	VehicleType        string `json:"vehicleType,omitempty"`
	TicketsIncluded    string `json:"ticketsIncluded,omitempty"`
	FerryDetails       string `json:"ferryDetails,omitempty"`
}

type ActivityRow struct {
	ActivityName   string  `json:"activityName"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Note           string  `json:"note,omitempty"`
}

// HotelOption is the simpler rate-card entry used by the legacy booking
// variant: one row per hotel choice, not per night.
type HotelOption struct {
	Name                 string     `json:"name"`
	Category             StarRating `json:"category"`
	PackageCostPerPerson float64    `json:"packageCostPerPerson"`
	PackageCostPerChild  float64    `json:"packageCostPerChild"`
}

// InclusionSet is an order-preserving string set plus a free-text note.
// The same shape serves both inclusions and exclusions.
type InclusionSet struct {
	Selected   []string `json:"selected"`
	CustomNote string   `json:"customNote,omitempty"`
}

// Normalize drops duplicate entries, keeping the first occurrence of each.
func (s *InclusionSet) Normalize() {
	seen := make(map[string]struct{}, len(s.Selected))
	out := s.Selected[:0]
	for _, item := range s.Selected {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	s.Selected = out
}

func (s InclusionSet) clone() InclusionSet {
	c := InclusionSet{CustomNote: s.CustomNote}
	if s.Selected != nil {
		c.Selected = append([]string(nil), s.Selected...)
	}
	return c
}

// ConsultantContact is the agency-side contact block printed on the brochure.
type ConsultantContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// ItineraryDraft is the mutable, in-progress itinerary owned by the
// authoring session. All collection edits go through the collection editor;
// SubmissionPayload produces the frozen copy that becomes a Submission.
type ItineraryDraft struct {
	GuestName      string            `json:"guestName"`
	Destination    string            `json:"destination"`
	StartDate      string            `json:"startDate"`
	Duration       int               `json:"duration"`
	TripID         string            `json:"tripId,omitempty"`
	QuotePrice     float64           `json:"quotePrice,omitempty"`
	PaymentNote    string            `json:"paymentNote,omitempty"`
	Adults         int               `json:"adults"`
	Children       int               `json:"children"`
	Infants        int               `json:"infants"`
	HotelCategory  StarRating        `json:"hotelCategory"`
	MealPlan       MealPlan          `json:"mealPlan"`
	TransferPlan   TransferPlan      `json:"transferPlan"`
	Consultant     ConsultantContact `json:"consultant"`
	CoverHeroImage string            `json:"coverHeroImageUrl,omitempty"`
	Days           []Day             `json:"days"`
	Hotels         []HotelNight      `json:"hotels"`
	Transportation []TransportEntry  `json:"transportation"`
	Activities     []ActivityRow     `json:"activities"`
	Inclusions     InclusionSet      `json:"inclusions"`
	Exclusions     InclusionSet      `json:"exclusions"`
	AcceptedTerms  bool              `json:"acceptedTerms"`
}

// SubmissionPayload returns a deep copy of the draft, safe to persist:
// later edits to the draft cannot reach the copy.
func (d *ItineraryDraft) SubmissionPayload() *ItineraryDraft {
	c := *d
	if d.Days != nil {
		c.Days = append([]Day(nil), d.Days...)
	}
	if d.Hotels != nil {
		c.Hotels = append([]HotelNight(nil), d.Hotels...)
	}
	if d.Transportation != nil {
		c.Transportation = append([]TransportEntry(nil), d.Transportation...)
	}
	if d.Activities != nil {
		c.Activities = append([]ActivityRow(nil), d.Activities...)
	}
	c.Inclusions = d.Inclusions.clone()
	c.Exclusions = d.Exclusions.clone()
	return &c
}

// BookingForm is the legacy cost-estimate variant: schema-driven scalar
// fields plus a simple day plan and a hotel rate card.
type BookingForm struct {
	Fields        map[string]any `json:"fields"`
	Days          []Day          `json:"days"`
	HotelOptions  []HotelOption  `json:"hotelOptions"`
	Inclusions    InclusionSet   `json:"inclusions"`
	Exclusions    InclusionSet   `json:"exclusions"`
	AcceptedTerms bool           `json:"acceptedTerms"`
}
