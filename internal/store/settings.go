package store

import (
	"database/sql"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/models"
)

// DefaultCouplePhotoURL is shown while no photo has been configured.
const DefaultCouplePhotoURL = "https://images.unsplash.com/photo-1724812773350-a7d0bf664417"

// GetSiteSettings returns the singleton settings row, falling back to the
// default photo when the row is absent.
func (s *Store) GetSiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.DB.QueryRow(`SELECT couple_photo_url FROM site_settings WHERE id = 1`).
		Scan(&settings.CouplePhotoURL)
	if err == sql.ErrNoRows {
		return &models.SiteSettings{CouplePhotoURL: DefaultCouplePhotoURL}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetCouplePhotoURL upserts the singleton settings row.
func (s *Store) SetCouplePhotoURL(url string) error {
	query := `
		INSERT INTO site_settings (id, couple_photo_url) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET couple_photo_url = excluded.couple_photo_url
	`
	_, err := s.DB.Exec(query, url)
	return err
}
