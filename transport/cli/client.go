package cli

import (
	"bestevents/internal/domains/client/model/dto"
	"bestevents/shared"
	gModel "bestevents/shared/model"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) clientCommand() *cobra.Command {
	svc := a.Services.Client

	return a.collectionCommand(collection{
		use:      "clients",
		short:    "Manage client event bookings",
		singular: "client booking",
		table:    svc.Table,
		describe: svc.Describe,
		remove:   svc.Delete,
	}, a.addClientCommand(), a.updateClientCommand())
}

func clientFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "event type: "+strings.Join(gModel.EventTypes.Labels(), ", "))
	cmd.Flags().String("date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "start time (HH:MM)")
	cmd.Flags().Float64("duration", 0, "duration in hours")
	cmd.Flags().String("venue", "", "venue")
}

func (a *App) addClientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, _ := cmd.Flags().GetString("date")
			clock, _ := cmd.Flags().GetString("time")
			duration, _ := cmd.Flags().GetFloat64("duration")
			venue, _ := cmd.Flags().GetString("venue")

			res, err := a.Services.Client.Create(cmd.Context(), dto.CreateClientRequest{
				Type:     enumValue[gModel.EventType](cmd, "type"),
				Date:     date,
				Time:     clock,
				Duration: duration,
				Venue:    venue,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added client booking %d.\n", res.ClientID)

			return nil
		},
	}

	clientFlags(cmd)

	return cmd
}

func (a *App) updateClientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a client booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.Services.Client.Update(cmd.Context(), dto.UpdateClientRequest{
				Type:     optEnum[gModel.EventType](cmd, "type"),
				Date:     optString(cmd, "date"),
				Time:     optString(cmd, "time"),
				Duration: optFloat(cmd, "duration"),
				Venue:    optString(cmd, "venue"),
			}, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated client booking %d.\n", id)

			return nil
		},
	}

	clientFlags(cmd)

	return cmd
}
