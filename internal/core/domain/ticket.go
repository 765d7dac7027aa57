package domain

import "time"

// Ticket is a snapshot projection of a confirmed reservation. It does not
// track later changes to the reservation.
type Ticket struct {
	ReservationID ID
	EventID       ID
	QRPayload     string
	Title         string
	Date          time.Time
	Localisation  string
	Description   string
	HolderName    string
	Admission     string
	IssuedAt      time.Time
}

// Document is an exported, shareable ticket artifact.
type Document struct {
	Name        string
	Path        string
	ContentType string
	Content     []byte
}

func (d *Document) Size() int {
	return len(d.Content)
}
