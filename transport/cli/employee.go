package cli

import (
	"bestevents/internal/domains/employee/model"
	"bestevents/internal/domains/employee/model/dto"
	"bestevents/shared"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) employeeCommand() *cobra.Command {
	svc := a.Services.Employee

	return a.collectionCommand(collection{
		use:      "employees",
		short:    "Manage employees and their subordinates",
		singular: "employee",
		table:    svc.Table,
		describe: svc.Describe,
		remove:   svc.Delete,
	}, a.addEmployeeCommand(), a.updateEmployeeCommand(), a.subordinateCommand())
}

func employeeFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "employee name")
	cmd.Flags().String("department", "", "department")
	cmd.Flags().String("job-title", "", "job title: "+strings.Join(model.JobTitles.Labels(), ", "))
	cmd.Flags().Int("salary", 0, "yearly salary, drawn at random when omitted")
}

func (a *App) addEmployeeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			department, _ := cmd.Flags().GetString("department")

			res, err := a.Services.Employee.Create(cmd.Context(), dto.CreateEmployeeRequest{
				Name:       name,
				Department: department,
				JobTitle:   enumValue[model.JobTitle](cmd, "job-title"),
				Salary:     optInt(cmd, "salary"),
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added employee %d.\n", res.ID)

			return nil
		},
	}

	employeeFlags(cmd)

	return cmd
}

func (a *App) updateEmployeeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.Services.Employee.Update(cmd.Context(), dto.UpdateEmployeeRequest{
				Name:       optString(cmd, "name"),
				Department: optString(cmd, "department"),
				JobTitle:   optEnum[model.JobTitle](cmd, "job-title"),
				Salary:     optInt(cmd, "salary"),
			}, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated employee %d.\n", id)

			return nil
		},
	}

	employeeFlags(cmd)

	return cmd
}

func (a *App) subordinateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subordinate",
		Short: "Link employees to the managers they report to",
	}

	link := func(use, short, done string, apply func(cmd *cobra.Command, managerID, employeeID int) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <manager-id> <employee-id>",
			Short: short,
			Args:  cobra.ExactArgs(2), //nolint:mnd
			RunE: func(cmd *cobra.Command, args []string) error {
				managerID, err := shared.ParseID(args[0])
				if err != nil {
					return err //nolint:wrapcheck
				}

				employeeID, err := shared.ParseID(args[1])
				if err != nil {
					return err //nolint:wrapcheck
				}

				if err = apply(cmd, managerID, employeeID); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), done+"\n", employeeID, managerID)

				return nil
			},
		}
	}

	cmd.AddCommand(
		link("add", "Add an employee to a manager's subordinates", "Added employee %d to manager %d.", func(cmd *cobra.Command, managerID, employeeID int) error {
			_, err := a.Services.Employee.AddSubordinate(cmd.Context(), managerID, employeeID)

			return err //nolint:wrapcheck
		}),
		link("remove", "Remove an employee from a manager's subordinates", "Removed employee %d from manager %d.", func(cmd *cobra.Command, managerID, employeeID int) error {
			_, err := a.Services.Employee.RemoveSubordinate(cmd.Context(), managerID, employeeID)

			return err //nolint:wrapcheck
		}),
	)

	return cmd
}
