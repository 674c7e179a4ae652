package site

import (
	"errors"
	"fmt"
)

var ErrFaqIndexOutOfRange = errors.New("faq index out of range")

// Accordion tracks which of n FAQ items is expanded. At most one is.
type Accordion struct {
	n    int
	open int
}

func NewAccordion(n int) *Accordion {
	a := &Accordion{n: n, open: -1}
	if n > 0 {
		a.open = 0
	}

	return a
}

// Toggle closes item i if it is open, otherwise opens it and closes the rest.
func (a *Accordion) Toggle(i int) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("%w: %d", ErrFaqIndexOutOfRange, i)
	}

	if a.open == i {
		a.open = -1
	} else {
		a.open = i
	}

	return nil
}

func (a *Accordion) Open() (int, bool) {
	return a.open, a.open >= 0
}
