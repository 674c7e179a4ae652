package models

const DefaultGuestCount = 50

type BookingFormData struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	EventType  EventType `json:"event_type"`
	Date       string    `json:"date"`
	GuestCount int       `json:"guest_count"`
	Notes      string    `json:"notes"`
}

func NewBookingFormData() BookingFormData {
	return BookingFormData{
		EventType:  EventWedding,
		GuestCount: DefaultGuestCount,
	}
}

type FormStep string

const (
	StepForm    FormStep = "form"
	StepSuccess FormStep = "success"
)

type PlanningStatus string

const (
	PlanningIdle      PlanningStatus = "idle"
	PlanningSubmitted PlanningStatus = "submitted"
)
