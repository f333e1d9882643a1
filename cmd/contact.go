package cmd

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/shader-backdrop/internal/contact"
)

var contactOpts struct {
	name    string
	email   string
	message string
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Build the WhatsApp link for a contact message",
	Long: `Build the wa.me link that opens a WhatsApp chat prefilled with the
contact message. Without flags the fields are asked for in dialogs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		form := contact.Form{
			Name:    contactOpts.name,
			Email:   contactOpts.email,
			Message: contactOpts.message,
		}
		interactive := form == (contact.Form{})
		if interactive {
			form, err = contact.Prompt()
			if errors.Is(err, zenity.ErrCanceled) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		link, err := form.Link(settings.Contact.Phone, settings.Contact.Owner)
		if err != nil {
			if interactive && errors.Is(err, contact.ErrMissingFields) {
				return contact.Alert(err)
			}
			return fmt.Errorf("%s: %w", contact.AlertMissingFields, err)
		}
		fmt.Println(link)
		return nil
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactOpts.name, "name", "", "your name")
	f.StringVar(&contactOpts.email, "email", "", "your email")
	f.StringVar(&contactOpts.message, "message", "", "the message")
	rootCmd.AddCommand(contactCmd)
}
