package store

import (
	"database/sql"
	"time"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/models"
)

const giftColumns = `id, name, description, image_url, product_link, price, is_selected, selected_by_name, selected_by_email, selected_at, created_at`

func scanGift(row interface{ Scan(...any) error }) (*models.Gift, error) {
	var g models.Gift
	var name, email sql.NullString
	var at sql.NullTime
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.ProductLink, &g.Price,
		&g.IsSelected, &name, &email, &at, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	if name.Valid {
		g.SelectedByName = &name.String
	}
	if email.Valid {
		g.SelectedByEmail = &email.String
	}
	if at.Valid {
		g.SelectedAt = &at.Time
	}
	return &g, nil
}

func (s *Store) queryGifts(query string, args ...any) ([]models.Gift, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gifts []models.Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, *g)
	}
	return gifts, rows.Err()
}

// ListAvailableGifts returns unreserved gifts, newest first. Public view.
func (s *Store) ListAvailableGifts() ([]models.Gift, error) {
	return s.queryGifts(`SELECT ` + giftColumns + ` FROM gifts WHERE is_selected = 0 ORDER BY created_at DESC`)
}

// ListAllGifts returns every gift, newest first. Admin view.
func (s *Store) ListAllGifts() ([]models.Gift, error) {
	return s.queryGifts(`SELECT ` + giftColumns + ` FROM gifts ORDER BY created_at DESC`)
}

// ListReservedGifts returns reserved gifts, most recently reserved first.
func (s *Store) ListReservedGifts() ([]models.Gift, error) {
	return s.queryGifts(`SELECT ` + giftColumns + ` FROM gifts WHERE is_selected = 1 ORDER BY selected_at DESC`)
}

func (s *Store) GetGiftByID(id string) (*models.Gift, error) {
	row := s.DB.QueryRow(`SELECT `+giftColumns+` FROM gifts WHERE id = ?`, id)
	g, err := scanGift(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Store) CreateGift(gift *models.Gift) error {
	query := `
		INSERT INTO gifts (id, name, description, image_url, product_link, price, is_selected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, CURRENT_TIMESTAMP)
	`
	_, err := s.DB.Exec(query, gift.ID, gift.Name, gift.Description, gift.ImageURL, gift.ProductLink, gift.Price)
	return err
}

// UpdateGift rewrites the identity fields only. Reservation state is owned
// by ReserveGift and ResetGift.
func (s *Store) UpdateGift(gift *models.Gift) error {
	query := `
		UPDATE gifts
		SET name = ?, description = ?, image_url = ?, product_link = ?, price = ?
		WHERE id = ?
	`
	_, err := s.DB.Exec(query, gift.Name, gift.Description, gift.ImageURL, gift.ProductLink, gift.Price, gift.ID)
	return err
}

func (s *Store) DeleteGift(id string) error {
	_, err := s.DB.Exec(`DELETE FROM gifts WHERE id = ?`, id)
	return err
}

// ReserveGift marks a gift reserved, guarded by the is_selected = 0
// predicate so that of two racing reservations only one row update lands.
// Returns false when zero rows were affected, i.e. the gift was already
// reserved (or does not exist).
func (s *Store) ReserveGift(id, guestName string, guestEmail *string, at time.Time) (bool, error) {
	query := `
		UPDATE gifts
		SET is_selected = 1, selected_by_name = ?, selected_by_email = ?, selected_at = ?
		WHERE id = ? AND is_selected = 0
	`
	res, err := s.DB.Exec(query, guestName, guestEmail, at.UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ResetGift returns a gift to availability, clearing the guest fields.
// Idempotent: resetting an unreserved gift is a no-op.
func (s *Store) ResetGift(id string) error {
	query := `
		UPDATE gifts
		SET is_selected = 0, selected_by_name = NULL, selected_by_email = NULL, selected_at = NULL
		WHERE id = ?
	`
	_, err := s.DB.Exec(query, id)
	return err
}
