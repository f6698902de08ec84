package store

import (
	"database/sql"
	"time"
)

// Event represents one entry in the append-only gesture event log.
// Label is the stable gesture that fired; Detail carries optional
// context such as the id of a pinch-selected photo.
type Event struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// EventRepository provides append and query operations for the event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Append inserts a new event into the log.
func (r *EventRepository) Append(e *Event) error {
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO gesture_events (id, label, detail, created_at)
		 VALUES (?, ?, ?, ?)`,
		e.ID, e.Label, e.Detail, e.CreatedAt,
	)
	return err
}

// Recent retrieves the most recent events, newest first.
func (r *EventRepository) Recent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, label, detail, created_at
		 FROM gesture_events ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Label, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Prune deletes events older than the given age.
func (r *EventRepository) Prune(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := r.db.Exec(`DELETE FROM gesture_events WHERE created_at < ?`, cutoff)
	return err
}
