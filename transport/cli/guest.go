package cli

import (
	"bestevents/internal/domains/guest/model/dto"
	"bestevents/shared"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) guestCommand() *cobra.Command {
	svc := a.Services.Guest

	return a.collectionCommand(collection{
		use:      "guests",
		short:    "Manage guests",
		singular: "guest",
		table:    svc.Table,
		describe: svc.Describe,
		remove:   svc.Delete,
	}, a.addGuestCommand(), a.updateGuestCommand())
}

func guestFlags(cmd *cobra.Command) {
	cmd.Flags().String("first-name", "", "first name")
	cmd.Flags().String("last-name", "", "last name")
	cmd.Flags().String("contact", "", "contact details")
}

func (a *App) addGuestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a guest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			contact, _ := cmd.Flags().GetString("contact")

			res, err := a.Services.Guest.Create(cmd.Context(), dto.CreateGuestRequest{
				FirstName:      firstName,
				LastName:       lastName,
				ContactDetails: contact,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added guest %d.\n", res.GuestID)

			return nil
		},
	}

	guestFlags(cmd)

	return cmd
}

func (a *App) updateGuestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.Services.Guest.Update(cmd.Context(), dto.UpdateGuestRequest{
				FirstName:      optString(cmd, "first-name"),
				LastName:       optString(cmd, "last-name"),
				ContactDetails: optString(cmd, "contact"),
			}, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated guest %d.\n", id)

			return nil
		},
	}

	guestFlags(cmd)

	return cmd
}
