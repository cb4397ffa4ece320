package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/models"
)

// ErrDuplicateAdmin reports a signup against an email that already has an
// admin account.
var ErrDuplicateAdmin = errors.New("admin email already registered")

func (s *Store) GetAdminByEmail(email string) (*models.Admin, error) {
	query := `SELECT id, email, password_hash FROM admins WHERE email = ?`
	row := s.DB.QueryRow(query, email)

	var admin models.Admin
	if err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (s *Store) CreateAdmin(email, passwordHash string) error {
	query := `INSERT INTO admins (email, password_hash) VALUES (?, ?)`
	_, err := s.DB.Exec(query, email, passwordHash)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateAdmin
	}
	return err
}
