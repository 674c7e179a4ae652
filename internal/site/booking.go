package site

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"eventPandey/internal/models"
)

var (
	ErrUnknownField = errors.New("unknown booking field")
	ErrInvalidField = errors.New("invalid booking field value")
)

// Booking form field names, as posted by the page.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldEventType  = "eventType"
	FieldDate       = "date"
	FieldGuestCount = "guestCount"
	FieldNotes      = "notes"
)

var notesPolicy = bluemonday.StrictPolicy()

type BookingModal struct {
	Step    models.FormStep
	Data    models.BookingFormData
	Pending bool
}

func NewBookingModal() *BookingModal {
	return &BookingModal{
		Step: models.StepForm,
		Data: models.NewBookingFormData(),
	}
}

// UpdateField merges a single field into the form data. On error nothing changes.
func (b *BookingModal) UpdateField(name, value string) error {
	data := b.Data

	switch name {
	case FieldName:
		data.Name = value
	case FieldEmail:
		data.Email = value
	case FieldPhone:
		data.Phone = value
	case FieldDate:
		data.Date = value
	case FieldNotes:
		data.Notes = html.UnescapeString(notesPolicy.Sanitize(value))
	case FieldEventType:
		et, err := models.ParseEventType(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidField, err)
		}
		data.EventType = et
	case FieldGuestCount:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 1 {
			return fmt.Errorf("%w: guestCount %q", ErrInvalidField, value)
		}
		data.GuestCount = n
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	b.Data = data

	return nil
}

// UpdateFields merges fields in order. If any of them fails, nothing changes.
func (b *BookingModal) UpdateFields(fields []UpdateBookingField) error {
	next := *b
	for _, f := range fields {
		if err := next.UpdateField(f.Name, f.Value); err != nil {
			return err
		}
	}
	b.Data = next.Data

	return nil
}

func (b *BookingModal) BeginSubmit() {
	b.Pending = true
}

func (b *BookingModal) Complete() {
	b.Pending = false
	b.Step = models.StepSuccess
}

func (b *BookingModal) Reset() {
	*b = *NewBookingModal()
}
