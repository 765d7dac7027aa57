package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventFree EventType = "free"
	EventPaid EventType = "paid"
)

type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// Event mirrors the backend's evenement record. Amount is expressed in
// major currency units and is only meaningful for paid events.
type Event struct {
	ID           ID              `json:"id"`
	Title        string          `json:"title"`
	Type         EventType       `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	SeatsTotal   int             `json:"seats"`
	Privacy      Privacy         `json:"privacy"`
	Date         time.Time       `json:"date"`
	TimeStart    time.Time       `json:"timeStart"`
	TimeEnd      time.Time       `json:"timeEnd"`
	Localisation string          `json:"localisation"`
	Description  string          `json:"description"`
	Image        string          `json:"image,omitempty"`
	CreatorID    ID              `json:"createur"`
}

func (e *Event) IsPaid() bool {
	return e.Type == EventPaid
}

// EndsAt is the instant after which the event no longer accepts
// reservations. timeEnd is captured by a time-only picker, so only its clock
// is meaningful: it is applied to the calendar day of Date. Without timeEnd
// the event runs until the end of its day.
func (e *Event) EndsAt() time.Time {
	if e.Date.IsZero() {
		return e.TimeEnd
	}
	loc := e.Date.Location()
	y, m, d := e.Date.Date()
	if e.TimeEnd.IsZero() {
		return time.Date(y, m, d+1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
	}
	end := e.TimeEnd.In(loc)
	return time.Date(y, m, d, end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), loc)
}

func (e *Event) IsExpired(now time.Time) bool {
	end := e.EndsAt()
	if end.IsZero() {
		return false
	}
	return end.Before(now)
}
