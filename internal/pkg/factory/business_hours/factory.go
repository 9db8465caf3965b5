package business_hours

import (
	"fmt"
	"time"
)

const (
	DefaultOpenHour  = 8
	DefaultCloseHour = 18

	layout = "15:04"
)

// Window рабочее окно на конкретный календарный день.
type Window struct {
	Opens  time.Time
	Closes time.Time
}

func (w Window) OpensString() string {
	return w.Opens.Format(layout)
}

func (w Window) ClosesString() string {
	return w.Closes.Format(layout)
}

// Policy проверяет попадание момента в рабочие часы, обе границы включительно.
type Policy struct {
	openHour  int
	closeHour int
}

func New(openHour, closeHour int) (*Policy, error) {
	if openHour < 0 || openHour > 23 || closeHour < 0 || closeHour > 23 {
		return nil, fmt.Errorf("business hours out of range: %d-%d", openHour, closeHour)
	}
	if openHour >= closeHour {
		return nil, fmt.Errorf("business hours open %d must be before close %d", openHour, closeHour)
	}

	return &Policy{
		openHour:  openHour,
		closeHour: closeHour,
	}, nil
}

// WindowFor окно считается в таймзоне переданного момента.
func (p *Policy) WindowFor(now time.Time) Window {
	year, month, day := now.Date()
	return Window{
		Opens:  time.Date(year, month, day, p.openHour, 0, 0, 0, now.Location()),
		Closes: time.Date(year, month, day, p.closeHour, 0, 0, 0, now.Location()),
	}
}

func (p *Policy) Check(now time.Time) (Window, bool) {
	window := p.WindowFor(now)
	ok := !now.Before(window.Opens) && !now.After(window.Closes)
	return window, ok
}

// StartOfDay начало календарного дня момента.
func StartOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}
