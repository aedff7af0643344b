package booking

import (
	"context"
	"time"
)

type BookingStatsByBucket struct {
	Bucket             string `db:"bucket" json:"bucket"`
	BookingsConfirmed  int    `db:"bookings_confirmed" json:"bookings_confirmed"`
	BookingsCancelled  int    `db:"bookings_cancelled" json:"bookings_cancelled"`
	LateCancellations  int    `db:"late_cancellations" json:"late_cancellations"`
}

type BookingStatsByStudio struct {
	StudioID           int    `db:"studio_id" json:"studio_id"`
	StudioName         string `db:"studio_name" json:"studio_name"`
	BookingsConfirmed  int    `db:"bookings_confirmed" json:"bookings_confirmed"`
	BookingsCancelled  int    `db:"bookings_cancelled" json:"bookings_cancelled"`
	LateCancellations  int    `db:"late_cancellations" json:"late_cancellations"`
}

func (r *repository) GetBookingStatsByDay(ctx context.Context, from, to time.Time) ([]BookingStatsByBucket, error) {
	query := `
SELECT
  TO_CHAR(slot_date, 'YYYY-MM-DD') AS bucket,
  COUNT(*) FILTER (WHERE status = 'confirmed')      AS bookings_confirmed,
  COUNT(*) FILTER (WHERE status = 'cancelled')      AS bookings_cancelled,
  COUNT(*) FILTER (WHERE status = 'cancelled_late') AS late_cancellations
FROM bookings
WHERE slot_date BETWEEN $1 AND $2
GROUP BY slot_date
ORDER BY bucket;
`
	var stats []BookingStatsByBucket
	if err := r.db.SelectContext(ctx, &stats, query, from.Format("2006-01-02"), to.Format("2006-01-02")); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) GetBookingStatsByStudio(ctx context.Context, from, to time.Time) ([]BookingStatsByStudio, error) {
	query := `
SELECT
  s.id   AS studio_id,
  s.name AS studio_name,
  COUNT(b.*) FILTER (WHERE b.status = 'confirmed')      AS bookings_confirmed,
  COUNT(b.*) FILTER (WHERE b.status = 'cancelled')      AS bookings_cancelled,
  COUNT(b.*) FILTER (WHERE b.status = 'cancelled_late') AS late_cancellations
FROM studios s
LEFT JOIN bookings b ON b.studio_id = s.id AND b.slot_date BETWEEN $1 AND $2
GROUP BY s.id, s.name
ORDER BY s.id;
`
	var stats []BookingStatsByStudio
	if err := r.db.SelectContext(ctx, &stats, query, from.Format("2006-01-02"), to.Format("2006-01-02")); err != nil {
		return nil, err
	}
	return stats, nil
}
