package cli

import (
	"bestevents/internal/domains/supplier/model"
	"bestevents/internal/domains/supplier/model/dto"
	"bestevents/shared"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) supplierCommand() *cobra.Command {
	svc := a.Services.Supplier

	return a.collectionCommand(collection{
		use:      "suppliers",
		short:    "Manage suppliers",
		singular: "supplier",
		table:    svc.Table,
		describe: svc.Describe,
		remove:   svc.Delete,
	}, a.addSupplierCommand(), a.updateSupplierCommand())
}

func supplierFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "supplier name")
	cmd.Flags().String("service-type", "", "service type: "+strings.Join(model.ServiceTypes.Labels(), ", "))
	cmd.Flags().String("contact", "", "contact details")
}

func (a *App) addSupplierCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a supplier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			contact, _ := cmd.Flags().GetString("contact")

			res, err := a.Services.Supplier.Create(cmd.Context(), dto.CreateSupplierRequest{
				Name:           name,
				ServiceType:    enumValue[model.ServiceType](cmd, "service-type"),
				ContactDetails: contact,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added supplier %d.\n", res.SupplierID)

			return nil
		},
	}

	supplierFlags(cmd)

	return cmd
}

func (a *App) updateSupplierCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.Services.Supplier.Update(cmd.Context(), dto.UpdateSupplierRequest{
				Name:           optString(cmd, "name"),
				ServiceType:    optEnum[model.ServiceType](cmd, "service-type"),
				ContactDetails: optString(cmd, "contact"),
			}, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated supplier %d.\n", id)

			return nil
		},
	}

	supplierFlags(cmd)

	return cmd
}
