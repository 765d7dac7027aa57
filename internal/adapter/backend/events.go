package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type eventsEnvelope struct {
	Evenements []eventDTO `json:"evenements"`
}

type eventEnvelope struct {
	Evenement *eventDTO `json:"evenement"`
}

type attendeesEnvelope struct {
	Reservations []attendeeDTO `json:"reservations"`
}

func (c *Client) listEvents(ctx context.Context, operation, path string) ([]domain.Event, error) {
	var envelope eventsEnvelope
	err := c.do(ctx, call{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	events, skipped := eventsToDomain(envelope.Evenements)
	for _, err := range skipped {
		c.logger.WithError(err).WithField("operation", operation).Warn("skipping malformed event")
	}

	return events, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return c.listEvents(ctx, "list_events", "/evenements")
}

func (c *Client) SearchEvents(ctx context.Context, query string) ([]domain.Event, error) {
	return c.listEvents(ctx, "search_events", "/recherche?query="+url.QueryEscape(query))
}

func (c *Client) ListEventsNotCreatedBy(ctx context.Context, userID domain.ID) ([]domain.Event, error) {
	return c.listEvents(ctx, "list_events_for_user", "/evenements/non-createur/"+url.PathEscape(userID.String()))
}

// ListEventsCreatedBy returns the events the user organises.
func (c *Client) ListEventsCreatedBy(ctx context.Context, userID domain.ID) ([]domain.Event, error) {
	return c.listEvents(ctx, "list_own_events", "/evenements/"+url.PathEscape(userID.String()))
}

func (c *Client) GetEventStatistics(ctx context.Context, eventID domain.ID) (*domain.EventStatistics, error) {
	var dto statisticsDTO
	err := c.do(ctx, call{
		operation: "get_event_statistics",
		method:    http.MethodGet,
		path:      "/evenement/" + url.PathEscape(eventID.String()) + "/statistiques",
		notFound:  domain.ErrEventNotFound,
	}, &dto)
	if err != nil {
		return nil, err
	}

	stats := dto.toDomain()
	stats.EventID = eventID
	return &stats, nil
}

func (c *Client) ListEventReservations(ctx context.Context, eventID domain.ID) ([]domain.Attendee, error) {
	var envelope attendeesEnvelope
	err := c.do(ctx, call{
		operation: "list_event_reservations",
		method:    http.MethodGet,
		path:      "/evenement/" + url.PathEscape(eventID.String()) + "/reservations",
		notFound:  domain.ErrEventNotFound,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	attendees := make([]domain.Attendee, 0, len(envelope.Reservations))
	for _, a := range envelope.Reservations {
		attendees = append(attendees, a.toDomain())
	}
	return attendees, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID domain.ID) (*domain.Event, error) {
	var envelope eventEnvelope
	err := c.do(ctx, call{
		operation: "get_event",
		method:    http.MethodGet,
		path:      "/evenement/" + url.PathEscape(eventID.String()),
		notFound:  domain.ErrEventNotFound,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Evenement == nil {
		return nil, domain.ErrEventNotFound
	}

	event, err := envelope.Evenement.toDomain()
	if err != nil {
		return nil, err
	}
	if event.ID.IsZero() {
		event.ID = eventID
	}

	return &event, nil
}
