package cli

import (
	"bestevents/shared"
	"bestevents/shared/tabular"
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	clientService "bestevents/internal/domains/client/service"
	employeeService "bestevents/internal/domains/employee/service"
	eventService "bestevents/internal/domains/event/service"
	guestService "bestevents/internal/domains/guest/service"
	supplierService "bestevents/internal/domains/supplier/service"
	venueService "bestevents/internal/domains/venue/service"
)

type Services struct {
	Employee employeeService.Employee
	Client   clientService.Client
	Event    eventService.Event
	Supplier supplierService.Supplier
	Guest    guestService.Guest
	Venue    venueService.Venue
}

// App is the data-entry command line. Input and output default to the process streams.
type App struct {
	Services Services
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
}

func New(services Services) *App {
	return &App{
		Services: services,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
}

func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "bestevents",
		Short:         "Best Events data entry",
		Long:          "Record employees, client bookings, events, suppliers, guests and venues.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	root.AddCommand(
		a.employeeCommand(),
		a.clientCommand(),
		a.eventCommand(),
		a.supplierCommand(),
		a.guestCommand(),
		a.venueCommand(),
	)

	return root
}

func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)

	return root.ExecuteContext(ctx) //nolint:wrapcheck
}

// collection carries the operations every collection command group shares.
type collection struct {
	use      string
	short    string
	singular string
	table    func(ctx context.Context) tabular.Table
	describe func(ctx context.Context, id int) (string, error)
	remove   func(ctx context.Context, id int) error
}

func (a *App) collectionCommand(c collection, extra ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.use,
		Short: c.short,
	}

	cmd.AddCommand(a.listCommand(c), a.showCommand(c), a.deleteCommand(c), a.exportCommand(c))
	cmd.AddCommand(extra...)

	return cmd
}

func (a *App) listCommand(c collection) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every " + c.singular,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.table(cmd.Context()).WriteText(cmd.OutOrStdout()) //nolint:wrapcheck
		},
	}
}

func (a *App) showCommand(c collection) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single " + c.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			out, err := c.describe(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func (a *App) deleteCommand(c collection) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + c.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shared.ParseID(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Delete %s %d?", c.singular, id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")

				return nil
			}

			if err = c.remove(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d.\n", c.singular, id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")

	return cmd
}

func (a *App) exportCommand(c collection) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every " + c.singular + " to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := out
			if path == "" {
				path = c.use + ".xlsx"
			}

			if err := writeFile(path, c.table(cmd.Context()).WriteXLSX); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s.\n", c.use, path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "spreadsheet to write (default <collection>.xlsx)")

	return cmd
}

func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err = render(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
