package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/models"
)

// GiftForm carries the raw admin form fields. Price arrives as text and is
// parsed here, before any store call.
type GiftForm struct {
	Name        string
	Description string
	ImageURL    string
	ProductLink string
	Price       string
}

func (f GiftForm) validate() (float64, error) {
	if strings.TrimSpace(f.Name) == "" {
		return 0, &ValidationError{Message: "Nome do presente é obrigatório"}
	}
	if strings.TrimSpace(f.Description) == "" {
		return 0, &ValidationError{Message: "Descrição é obrigatória"}
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		return 0, &ValidationError{Message: "URL da imagem é obrigatória"}
	}
	if strings.TrimSpace(f.ProductLink) == "" {
		return 0, &ValidationError{Message: "Link do produto é obrigatório"}
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 {
		return 0, &ValidationError{Message: "Preço inválido"}
	}
	return price, nil
}

// CreateGift validates the form, assigns a fresh identifier and inserts.
func (s *Service) CreateGift(form GiftForm) (*models.Gift, error) {
	price, err := form.validate()
	if err != nil {
		return nil, err
	}

	gift := &models.Gift{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		ImageURL:    strings.TrimSpace(form.ImageURL),
		ProductLink: strings.TrimSpace(form.ProductLink),
		Price:       price,
	}
	if err := s.store.CreateGift(gift); err != nil {
		return nil, fmt.Errorf("creating gift: %w", err)
	}
	return gift, nil
}

// UpdateGift validates the form and rewrites the gift's identity fields in
// place. Reservation state is untouched.
func (s *Service) UpdateGift(id string, form GiftForm) (*models.Gift, error) {
	price, err := form.validate()
	if err != nil {
		return nil, err
	}

	gift := &models.Gift{
		ID:          id,
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		ImageURL:    strings.TrimSpace(form.ImageURL),
		ProductLink: strings.TrimSpace(form.ProductLink),
		Price:       price,
	}
	if err := s.store.UpdateGift(gift); err != nil {
		return nil, fmt.Errorf("updating gift %s: %w", id, err)
	}
	return gift, nil
}

func (s *Service) DeleteGift(id string) error {
	if err := s.store.DeleteGift(id); err != nil {
		return fmt.Errorf("deleting gift %s: %w", id, err)
	}
	return nil
}

// ResetGift returns a reserved gift to availability. Idempotent on gifts
// that are already available.
func (s *Service) ResetGift(id string) error {
	if err := s.store.ResetGift(id); err != nil {
		return fmt.Errorf("resetting gift %s: %w", id, err)
	}
	return nil
}
