package registry

import (
	"fmt"
	"strings"
)

// Reserve marks a gift as chosen by a guest. The guest name is required;
// the email is optional and stored as NULL when blank. A gift can be
// reserved at most once: when the conditional update lands on zero rows the
// caller gets ErrAlreadyReserved instead of a silent success.
func (s *Service) Reserve(giftID, guestName, guestEmail string) error {
	name := strings.TrimSpace(guestName)
	if name == "" {
		return &ValidationError{Message: "Nome obrigatório"}
	}

	var email *string
	if e := strings.TrimSpace(guestEmail); e != "" {
		email = &e
	}

	reserved, err := s.store.ReserveGift(giftID, name, email, s.now())
	if err != nil {
		return fmt.Errorf("reserving gift %s: %w", giftID, err)
	}
	if !reserved {
		return ErrAlreadyReserved
	}
	return nil
}
