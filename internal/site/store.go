// Package site holds the per-visitor interaction state of the page: the FAQ
// accordion, the quote form, and the booking dialog.
//
// All changes go through Store.Dispatch. Delayed transitions are scheduled on
// timer scopes owned by the view they belong to, so cancelling a view also
// cancels its pending callbacks.
package site

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"eventPandey/internal/clock"
	"eventPandey/internal/models"
)

var (
	ErrClosed        = errors.New("store is closed")
	ErrBookingClosed = errors.New("booking dialog is not open")
	ErrUnknownMsg    = errors.New("unknown message")
)

const (
	DefaultBookingDelay  = time.Second
	DefaultPlanningReset = 3 * time.Second
)

type Options struct {
	BookingDelay        time.Duration
	PlanningReset       time.Duration
	ResetBookingOnClose bool
	FaqItems            int
}

type Msg interface {
	msg()
}

type (
	OpenBooking  struct{}
	CloseBooking struct{}
	ToggleFAQ    struct {
		Index int
	}
	SubmitPlanning     struct{}
	UpdateBookingField struct {
		Name  string
		Value string
	}
	SubmitBooking struct{}

	// SubmitBookingForm merges the whole form and submits it in one step.
	SubmitBookingForm struct {
		Fields []UpdateBookingField
	}

	// Timer completions carry the generation they were scheduled under and
	// are ignored once that generation has been superseded.
	planningResetDue struct {
		gen uint64
	}
	bookingSubmitDone struct {
		gen uint64
	}
)

func (OpenBooking) msg()        {}
func (CloseBooking) msg()       {}
func (ToggleFAQ) msg()          {}
func (SubmitPlanning) msg()     {}
func (UpdateBookingField) msg() {}
func (SubmitBooking) msg()      {}
func (SubmitBookingForm) msg()  {}
func (planningResetDue) msg()   {}
func (bookingSubmitDone) msg()  {}

type Store struct {
	clock clock.Clock
	opts  Options

	mu          sync.Mutex
	closed      bool
	bookingOpen bool
	faq         *Accordion
	planning    *PlanningForm
	booking     *BookingModal

	planningTimers *clock.Scope
	bookingTimers  *clock.Scope
	planningGen    uint64
	bookingGen     uint64
	planningDue    time.Time
	bookingDue     time.Time
}

func NewStore(c clock.Clock, opts Options) *Store {
	if opts.BookingDelay <= 0 {
		opts.BookingDelay = DefaultBookingDelay
	}
	if opts.PlanningReset <= 0 {
		opts.PlanningReset = DefaultPlanningReset
	}

	return &Store{
		clock:          c,
		opts:           opts,
		faq:            NewAccordion(opts.FaqItems),
		planning:       NewPlanningForm(),
		booking:        NewBookingModal(),
		planningTimers: clock.NewScope(c),
		bookingTimers:  clock.NewScope(c),
	}
}

func (s *Store) Dispatch(m Msg) error {
	const op = "site.Store.Dispatch"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}

	switch m := m.(type) {
	case OpenBooking:
		s.bookingOpen = true

	case CloseBooking:
		s.bookingOpen = false
		s.cancelBooking()

	case ToggleFAQ:
		if err := s.faq.Toggle(m.Index); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

	case SubmitPlanning:
		s.planning.Submit()
		s.planningTimers.Cancel()
		s.planningGen++
		s.planningDue = s.clock.Now().Add(s.opts.PlanningReset)
		s.planningTimers.AfterFunc(s.opts.PlanningReset, s.fire(planningResetDue{gen: s.planningGen}))

	case planningResetDue:
		if m.gen != s.planningGen {
			return nil
		}
		s.planning.Reset()
		s.planningDue = time.Time{}

	case UpdateBookingField:
		if err := s.booking.UpdateField(m.Name, m.Value); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

	case SubmitBooking:
		if !s.bookingOpen {
			return fmt.Errorf("%s: %w", op, ErrBookingClosed)
		}
		s.submitBooking()

	case SubmitBookingForm:
		if !s.bookingOpen {
			return fmt.Errorf("%s: %w", op, ErrBookingClosed)
		}
		if err := s.booking.UpdateFields(m.Fields); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.submitBooking()

	case bookingSubmitDone:
		if m.gen != s.bookingGen {
			return nil
		}
		s.booking.Complete()
		s.bookingDue = time.Time{}

	default:
		return fmt.Errorf("%s: %w: %T", op, ErrUnknownMsg, m)
	}

	return nil
}

// fire returns a timer callback that feeds m back through Dispatch.
func (s *Store) fire(m Msg) func() {
	return func() {
		_ = s.Dispatch(m)
	}
}

func (s *Store) submitBooking() {
	s.booking.BeginSubmit()
	s.bookingTimers.Cancel()
	s.bookingGen++
	s.bookingDue = s.clock.Now().Add(s.opts.BookingDelay)
	s.bookingTimers.AfterFunc(s.opts.BookingDelay, s.fire(bookingSubmitDone{gen: s.bookingGen}))
}

func (s *Store) cancelBooking() {
	s.bookingTimers.Cancel()
	s.bookingGen++
	s.booking.Pending = false
	s.bookingDue = time.Time{}
	if s.opts.ResetBookingOnClose {
		s.booking.Reset()
	}
}

// Close cancels every pending timer. Further messages are rejected.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.planningTimers.Cancel()
	s.bookingTimers.Cancel()
	s.planningGen++
	s.bookingGen++
}

type Snapshot struct {
	BookingOpen    bool                   `json:"booking_open"`
	FaqOpen        *int                   `json:"faq_open"`
	PlanningStatus models.PlanningStatus  `json:"planning_status"`
	BookingStep    models.FormStep        `json:"booking_step"`
	BookingPending bool                   `json:"booking_pending"`
	Booking        models.BookingFormData `json:"booking"`
	// RefreshIn is the time until the next delayed transition, zero if none is pending.
	RefreshIn time.Duration `json:"-"`
}

func (sn Snapshot) FaqIsOpen(i int) bool {
	return sn.FaqOpen != nil && *sn.FaqOpen == i
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn := Snapshot{
		BookingOpen:    s.bookingOpen,
		PlanningStatus: s.planning.Status,
		BookingStep:    s.booking.Step,
		BookingPending: s.booking.Pending,
		Booking:        s.booking.Data,
	}

	if i, ok := s.faq.Open(); ok {
		sn.FaqOpen = &i
	}

	now := s.clock.Now()
	for _, due := range []time.Time{s.planningDue, s.bookingDue} {
		if due.IsZero() {
			continue
		}
		left := due.Sub(now)
		if left <= 0 {
			left = time.Millisecond
		}
		if sn.RefreshIn == 0 || left < sn.RefreshIn {
			sn.RefreshIn = left
		}
	}

	return sn
}
