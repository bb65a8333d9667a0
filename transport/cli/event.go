package cli

import (
	"bestevents/internal/domains/event/model/dto"
	"bestevents/shared"
	gModel "bestevents/shared/model"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) eventCommand() *cobra.Command {
	svc := a.Services.Event

	return a.collectionCommand(collection{
		use:      "events",
		short:    "Manage events",
		singular: "event",
		table:    svc.Table,
		describe: svc.Describe,
		remove:   svc.Delete,
	}, a.addEventCommand(), a.updateEventCommand())
}

func eventFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "event name")
	cmd.Flags().String("type", "", "event type: "+strings.Join(gModel.EventTypes.Labels(), ", "))
	cmd.Flags().String("date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().String("venue", "", "venue")
	cmd.Flags().String("theme", "", "theme")
	cmd.Flags().Int("invoice", 0, "invoice number, drawn at random when omitted")
}

func (a *App) addEventCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			date, _ := cmd.Flags().GetString("date")
			venue, _ := cmd.Flags().GetString("venue")
			theme, _ := cmd.Flags().GetString("theme")

			res, err := a.Services.Event.Create(cmd.Context(), dto.CreateEventRequest{
				Name:    name,
				Type:    enumValue[gModel.EventType](cmd, "type"),
				Date:    date,
				Venue:   venue,
				Theme:   theme,
				Invoice: optInt(cmd, "invoice"),
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added event %d with invoice %d.\n", res.EventID, res.Invoice)

			return nil
		},
	}

	eventFlags(cmd)

	return cmd
}

func (a *App) updateEventCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.Services.Event.Update(cmd.Context(), dto.UpdateEventRequest{
				Name:    optString(cmd, "name"),
				Type:    optEnum[gModel.EventType](cmd, "type"),
				Date:    optString(cmd, "date"),
				Venue:   optString(cmd, "venue"),
				Theme:   optString(cmd, "theme"),
				Invoice: optInt(cmd, "invoice"),
			}, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated event %d.\n", id)

			return nil
		},
	}

	eventFlags(cmd)

	return cmd
}
