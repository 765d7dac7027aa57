package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

// flexString accepts a JSON string, number or null.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}

	*f = flexString(data)
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (f flexString) time() time.Time {
	s := string(f)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (f flexString) decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(f))
}

func (f flexString) int() int {
	d, err := f.decimal()
	if err != nil {
		return 0
	}
	return int(d.IntPart())
}

type eventDTO struct {
	ID           domain.ID  `json:"id"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	Amount       flexString `json:"amount"`
	Seats        flexString `json:"seats"`
	Privacy      string     `json:"privacy"`
	Date         flexString `json:"date"`
	TimeStart    flexString `json:"timeStart"`
	TimeEnd      flexString `json:"timeEnd"`
	Localisation string     `json:"localisation"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Createur     domain.ID  `json:"createur"`
}

func eventType(raw string) domain.EventType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "free", "gratuit":
		return domain.EventFree
	case "paid", "payant":
		return domain.EventPaid
	}
	return domain.EventType(raw)
}

// toDomain fails when a paid event carries no usable amount: charging it
// as zero would confirm a reservation that was never paid for.
func (d eventDTO) toDomain() (domain.Event, error) {
	event := domain.Event{
		ID:           d.ID,
		Title:        d.Title,
		Type:         eventType(d.Type),
		SeatsTotal:   d.Seats.int(),
		Privacy:      domain.Privacy(strings.ToLower(d.Privacy)),
		Date:         d.Date.time(),
		TimeStart:    d.TimeStart.time(),
		TimeEnd:      d.TimeEnd.time(),
		Localisation: d.Localisation,
		Description:  d.Description,
		Image:        d.Image,
		CreatorID:    d.Createur,
	}

	amount, err := d.Amount.decimal()
	switch {
	case err == nil:
		event.Amount = amount
	case event.IsPaid():
		return domain.Event{}, fmt.Errorf("event %s: %w: amount %q", d.ID, domain.ErrInvalidAmount, string(d.Amount))
	}

	return event, nil
}

// eventsToDomain drops events that cannot be decoded and reports them.
func eventsToDomain(dtos []eventDTO) ([]domain.Event, []error) {
	events := make([]domain.Event, 0, len(dtos))
	var skipped []error
	for _, d := range dtos {
		event, err := d.toDomain()
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		events = append(events, event)
	}
	return events, skipped
}

type reservationDTO struct {
	ID              domain.ID  `json:"id"`
	Reserveur       domain.ID  `json:"reserveur"`
	EvenementID     domain.ID  `json:"evenement_id"`
	ReservationDate flexString `json:"reservation_date"`
	Title           string     `json:"title"`
	Date            flexString `json:"date"`
	Localisation    string     `json:"localisation"`
	Description     string     `json:"description"`
	Image           string     `json:"image"`
}

func (d reservationDTO) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:              d.ID,
		UserID:          d.Reserveur,
		EventID:         d.EvenementID,
		ReservationDate: string(d.ReservationDate),
		Title:           d.Title,
		Date:            d.Date.time(),
		Localisation:    d.Localisation,
		Description:     d.Description,
		Image:           d.Image,
	}
}

type dailySubscriptionsDTO struct {
	Date          flexString `json:"date"`
	Subscriptions flexString `json:"subscriptions"`
}

type statisticsDTO struct {
	DailySubscriptions []dailySubscriptionsDTO `json:"dailySubscriptions"`
}

func (d statisticsDTO) toDomain() domain.EventStatistics {
	stats := domain.EventStatistics{
		DailySubscriptions: make([]domain.DailySubscriptions, 0, len(d.DailySubscriptions)),
	}
	for _, day := range d.DailySubscriptions {
		stats.DailySubscriptions = append(stats.DailySubscriptions, domain.DailySubscriptions{
			Date:  string(day.Date),
			Count: day.Subscriptions.int(),
		})
	}
	return stats
}

type attendeeDTO struct {
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	ReservationDate flexString `json:"reservation_date"`
}

func (d attendeeDTO) toDomain() domain.Attendee {
	return domain.Attendee{
		Username:   d.Username,
		Email:      d.Email,
		ReservedAt: d.ReservationDate.time(),
	}
}
