package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

// ReservationRepository keeps a local record of reservations the user
// made or cancelled through this client. The backend stays the source of
// truth; this table only remembers what the backend listing cannot tell.
type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	query := `
	INSERT INTO reservations (id, user_id, event_id, reservation_date, status, title, event_date, localisation, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE
	SET status = EXCLUDED.status,
		title = EXCLUDED.title,
		event_date = EXCLUDED.event_date,
		localisation = EXCLUDED.localisation,
		updated_at = EXCLUDED.updated_at
	WHERE reservations.status <> 'CANCELLED'
	`

	var eventDate *time.Time
	if !reservation.Date.IsZero() {
		eventDate = &reservation.Date
	}

	updatedAt := reservation.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		reservation.ID,
		reservation.UserID,
		reservation.EventID,
		reservation.ReservationDate,
		reservation.Status,
		reservation.Title,
		eventDate,
		reservation.Localisation,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation %s: %w", reservation.ID, err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID domain.ID) (*domain.Reservation, error) {
	query := `
	SELECT id, user_id, event_id, reservation_date, status, title, event_date, localisation, updated_at
	FROM reservations
	WHERE id = $1
	`

	var reservation domain.Reservation
	var eventDate sql.NullTime

	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.EventID,
		&reservation.ReservationDate,
		&reservation.Status,
		&reservation.Title,
		&eventDate,
		&reservation.Localisation,
		&reservation.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}

		return nil, err
	}

	if eventDate.Valid {
		reservation.Date = eventDate.Time
	}

	return &reservation, nil
}

func (r *ReservationRepository) CancelledIDs(ctx context.Context, userID domain.ID) (map[domain.ID]struct{}, error) {
	query := `
	SELECT id FROM reservations
	WHERE user_id = $1 AND status = $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, domain.ReservationCancelled)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ids := make(map[domain.ID]struct{})
	for rows.Next() {
		var id domain.ID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

func (r *ReservationRepository) DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE status = $1 AND updated_at < $2`, domain.ReservationCancelled, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
