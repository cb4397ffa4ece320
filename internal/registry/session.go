package registry

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/auth"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/models"
)

// Login authenticates an admin by email and password. Unknown email,
// lookup failure and digest mismatch all surface as ErrInvalidCredentials.
func (s *Service) Login(email, password string) (*models.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Preencha e-mail e senha"}
	}

	admin, err := s.store.GetAdminByEmail(email)
	if err != nil || admin == nil {
		return nil, ErrInvalidCredentials
	}

	digest := auth.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(admin.PasswordHash)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// Signup registers a new admin account. The store reports a uniqueness
// violation on email as store.ErrDuplicateAdmin, passed through unchanged.
func (s *Service) Signup(email, password string) (*models.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Preencha e-mail e senha"}
	}

	digest := auth.HashPassword(password)
	if err := s.store.CreateAdmin(email, digest); err != nil {
		return nil, fmt.Errorf("creating admin: %w", err)
	}

	admin, err := s.store.GetAdminByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("loading admin after signup: %w", err)
	}
	return admin, nil
}
