package contact

import (
	"errors"

	"github.com/ncruces/zenity"
)

const dialogTitle = "Contato"

// Prompt asks for the form fields with native entry dialogs. A cancelled
// dialog returns zenity.ErrCanceled.
func Prompt() (Form, error) {
	var f Form
	fields := []struct {
		label string
		dst   *string
	}{
		{"Nome", &f.Name},
		{"Email", &f.Email},
		{"Mensagem", &f.Message},
	}
	for _, field := range fields {
		v, err := zenity.Entry(field.label, zenity.Title(dialogTitle))
		if err != nil {
			return Form{}, err
		}
		*field.dst = v
	}
	return f, nil
}

// Alert shows err to the visitor. Missing fields get the friendly message.
func Alert(err error) error {
	msg := err.Error()
	if errors.Is(err, ErrMissingFields) {
		msg = AlertMissingFields
	}
	return zenity.Warning(msg, zenity.Title(dialogTitle))
}

// ShowLink displays the generated link so it can be copied.
func ShowLink(link string) error {
	return zenity.Info(link, zenity.Title(dialogTitle), zenity.NoWrap())
}
