package domain

import "time"

type DailySubscriptions struct {
	Date  string `json:"date"`
	Count int    `json:"subscriptions"`
}

// EventStatistics is the creator's view of how an event fills up over time.
type EventStatistics struct {
	EventID            ID                   `json:"eventId"`
	DailySubscriptions []DailySubscriptions `json:"dailySubscriptions"`
}

func (s *EventStatistics) Total() int {
	total := 0
	for _, d := range s.DailySubscriptions {
		total += d.Count
	}
	return total
}

// Attendee is one reservation on an event as listed to its creator.
type Attendee struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	ReservedAt time.Time `json:"reservationDate"`
}
