// Package contact turns the contact form into a WhatsApp deep link.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFields is returned when any form field is blank.
var ErrMissingFields = errors.New("contact: all fields are required")

// AlertMissingFields is what the visitor is shown for ErrMissingFields.
const AlertMissingFields = "Por favor, preencha todos os campos."

const linkBase = "https://wa.me/"

// Form is a submitted contact form.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns the form with surrounding whitespace removed.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks that no field is blank.
func (f Form) Validate() error {
	t := f.Trimmed()
	if t.Name == "" || t.Email == "" || t.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// Compose writes the greeting sent to owner.
func (f Form) Compose(owner string) string {
	t := f.Trimmed()
	return fmt.Sprintf("Olá %s! Meu nome é %s, email: %s. \n\nMensagem: %s", owner, t.Name, t.Email, t.Message)
}

// Link validates the form and builds the wa.me link that opens a chat with
// phone, prefilled with the composed message.
func (f Form) Link(phone, owner string) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	return linkBase + phone + "?text=" + EncodeURIComponent(f.Compose(owner)), nil
}

// EncodeURIComponent escapes s like JavaScript's encodeURIComponent: every
// UTF-8 byte is percent-encoded except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
