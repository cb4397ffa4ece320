package handlers

import (
	"errors"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/registry"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

// flashForError maps a workflow error to the flash message shown to the
// user. Unrecognized (store) errors get the operation's fixed default text.
func flashForError(err error, fallback string) FlashMessage {
	if ve, ok := registry.IsValidation(err); ok {
		return FlashMessage{Type: "error", Message: ve.Message}
	}
	switch {
	case errors.Is(err, registry.ErrAlreadyReserved):
		return FlashMessage{Type: "error", Message: "Este presente já foi escolhido por outro convidado"}
	case errors.Is(err, registry.ErrInvalidCredentials):
		return FlashMessage{Type: "error", Message: "Credenciais inválidas"}
	case errors.Is(err, store.ErrDuplicateAdmin):
		return FlashMessage{Type: "error", Message: "Admin já existe"}
	default:
		return FlashMessage{Type: "error", Message: fallback}
	}
}
