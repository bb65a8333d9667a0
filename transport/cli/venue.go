package cli

import (
	"bestevents/internal/domains/venue/model/dto"
	"bestevents/shared"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) venueCommand() *cobra.Command {
	svc := a.Services.Venue

	return a.collectionCommand(collection{
		use:      "venues",
		short:    "Manage venues",
		singular: "venue",
		table:    svc.Table,
		describe: svc.Describe,
		remove:   svc.Delete,
	}, a.addVenueCommand(), a.updateVenueCommand())
}

func venueFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "venue name")
	cmd.Flags().String("address", "", "address")
	cmd.Flags().String("contact", "", "contact details")
	cmd.Flags().Int("min-guests", 0, "minimum number of guests")
	cmd.Flags().Int("max-guests", 0, "maximum number of guests")
}

func (a *App) addVenueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a venue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			address, _ := cmd.Flags().GetString("address")
			contact, _ := cmd.Flags().GetString("contact")
			minGuests, _ := cmd.Flags().GetInt("min-guests")
			maxGuests, _ := cmd.Flags().GetInt("max-guests")

			res, err := a.Services.Venue.Create(cmd.Context(), dto.CreateVenueRequest{
				Name:           name,
				Address:        address,
				ContactDetails: contact,
				MinGuests:      minGuests,
				MaxGuests:      maxGuests,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added venue %d.\n", res.VenueID)

			return nil
		},
	}

	venueFlags(cmd)

	return cmd
}

func (a *App) updateVenueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.Services.Venue.Update(cmd.Context(), dto.UpdateVenueRequest{
				Name:           optString(cmd, "name"),
				Address:        optString(cmd, "address"),
				ContactDetails: optString(cmd, "contact"),
				MinGuests:      optInt(cmd, "min-guests"),
				MaxGuests:      optInt(cmd, "max-guests"),
			}, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated venue %d.\n", id)

			return nil
		},
	}

	venueFlags(cmd)

	return cmd
}
