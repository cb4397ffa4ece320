package models

import (
	"time"
)

type Gift struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	ImageURL        string     `json:"image_url"`
	ProductLink     string     `json:"product_link"`
	Price           float64    `json:"price"`
	IsSelected      bool       `json:"is_selected"`
	SelectedByName  *string    `json:"selected_by_name"`  // set iff reserved
	SelectedByEmail *string    `json:"selected_by_email"` // optional, reserved only
	SelectedAt      *time.Time `json:"selected_at"`       // set iff reserved
	CreatedAt       time.Time  `json:"created_at"`
}

// GuestName returns the reserving guest's name, or "" when unreserved.
func (g *Gift) GuestName() string {
	if g.SelectedByName == nil {
		return ""
	}
	return *g.SelectedByName
}

// GuestEmail returns the reserving guest's email, or "" when absent.
func (g *Gift) GuestEmail() string {
	if g.SelectedByEmail == nil {
		return ""
	}
	return *g.SelectedByEmail
}

type Admin struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // SHA-256 hex digest
}

type SiteSettings struct {
	CouplePhotoURL string `json:"couple_photo_url"`
}
