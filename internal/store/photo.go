package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Photo represents a photo ornament hung on the scene.
// SlotX and SlotY are normalized [0,1] screen coordinates of the slot
// the ornament occupies.
type Photo struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	FilePath  string    `json:"file_path"`
	SlotX     float64   `json:"slot_x"`
	SlotY     float64   `json:"slot_y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhotoRepository provides CRUD operations for photo ornaments.
type PhotoRepository struct {
	db *sql.DB
}

// Photos returns the photo repository for this store.
func (s *Store) Photos() *PhotoRepository {
	return &PhotoRepository{db: s.db}
}

// Create inserts a new photo into the database.
func (r *PhotoRepository) Create(p *Photo) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO photos (id, label, file_path, slot_x, slot_y, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Label, p.FilePath, p.SlotX, p.SlotY, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a photo by its ID.
func (r *PhotoRepository) GetByID(id string) (*Photo, error) {
	p := &Photo{}

	err := r.db.QueryRow(
		`SELECT id, label, file_path, slot_x, slot_y, created_at, updated_at
		 FROM photos WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Label, &p.FilePath, &p.SlotX, &p.SlotY, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// List retrieves all photos ordered by creation time.
func (r *PhotoRepository) List() ([]*Photo, error) {
	rows, err := r.db.Query(
		`SELECT id, label, file_path, slot_x, slot_y, created_at, updated_at
		 FROM photos ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		p := &Photo{}
		err := rows.Scan(&p.ID, &p.Label, &p.FilePath, &p.SlotX, &p.SlotY, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return photos, nil
}

// Update updates an existing photo in the database.
func (r *PhotoRepository) Update(p *Photo) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE photos SET label = ?, file_path = ?, slot_x = ?, slot_y = ?, updated_at = ?
		 WHERE id = ?`,
		p.Label, p.FilePath, p.SlotX, p.SlotY, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a photo from the database by its ID.
func (r *PhotoRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
