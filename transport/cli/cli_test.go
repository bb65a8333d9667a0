package cli_test

import (
	"bestevents/config"
	"bestevents/di"
	"bestevents/shared/constant"
	"bestevents/shared/failure"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type harness struct {
	t   *testing.T
	ctx context.Context
	in  *bytes.Buffer
	out *bytes.Buffer
	run func(args ...string) error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = constant.StorageDriverMemory
	cfg.Storage.Format = "json"
	cfg.Storage.Collections.Employees = "employees"
	cfg.Storage.Collections.Clients = "clients_events"
	cfg.Storage.Collections.Events = "events"
	cfg.Storage.Collections.Suppliers = "suppliers"
	cfg.Storage.Collections.Guests = "guests"
	cfg.Storage.Collections.Venues = "venues"

	ctx := context.Background()

	app, cleanup, err := di.InitializeApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	h := &harness{t: t, ctx: ctx, in: &bytes.Buffer{}, out: &bytes.Buffer{}}
	app.In = h.in
	app.Out = h.out
	app.Err = &bytes.Buffer{}

	h.run = func(args ...string) error {
		h.out.Reset()

		return app.Execute(ctx, args)
	}

	return h
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()

	require.NoError(h.t, h.run(args...), strings.Join(args, " "))

	return h.out.String()
}

func TestVenueCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("venues", "add", "--name", "Grand Hall", "--address", "1 High Street", "--contact", "555-0100", "--min-guests", "20", "--max-guests", "200")
	assert.Equal(t, "Added venue 1.\n", out)

	out = h.mustRun("venues", "list")
	assert.Contains(t, out, "Venue ID")
	assert.Contains(t, out, "Grand Hall")

	out = h.mustRun("venues", "show", "1")
	assert.Contains(t, out, "Name: Grand Hall")
	assert.Contains(t, out, "Max Guests: 200")

	out = h.mustRun("venues", "update", "1", "--max-guests", "150")
	assert.Equal(t, "Updated venue 1.\n", out)
	assert.Contains(t, h.mustRun("venues", "show", "1"), "Max Guests: 150")

	err := h.run("venues", "update", "1", "--min-guests", "500")
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
	assert.Contains(t, h.mustRun("venues", "show", "1"), "Min Guests: 20")

	err = h.run("venues", "update", "1")
	assert.ErrorIs(t, err, failure.EmptyUpdateRequest)
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	h := newHarness(t)

	h.mustRun("guests", "add", "--first-name", "Ada", "--last-name", "Lovelace", "--contact", "ada@example.com")

	h.in.WriteString("n\n")
	out := h.mustRun("guests", "delete", "1")
	assert.Contains(t, out, "Delete guest 1? [y/N]: ")
	assert.Contains(t, out, "Aborted.")
	assert.Contains(t, h.mustRun("guests", "show", "1"), "Ada")

	h.in.WriteString("y\n")
	out = h.mustRun("guests", "delete", "1")
	assert.Contains(t, out, "Deleted guest 1.")

	err := h.run("guests", "show", "1")
	assert.True(t, failure.IsNotFound(err))

	out = h.mustRun("guests", "add", "--first-name", "Grace", "--last-name", "Hopper", "--contact", "grace@example.com")
	assert.Equal(t, "Added guest 2.\n", out)

	out = h.mustRun("guests", "delete", "2", "--yes")
	assert.Equal(t, "Deleted guest 2.\n", out)

	assert.Equal(t, "No records found.\n", h.mustRun("guests", "list"))
}

func TestEmployeeSubordinateCommands(t *testing.T) {
	h := newHarness(t)

	h.mustRun("employees", "add", "--name", "Maria", "--department", "Sales", "--job-title", "Sales Manager", "--salary", "60000")
	h.mustRun("employees", "add", "--name", "Sam", "--department", "Sales", "--job-title", "salesperson")

	out := h.mustRun("employees", "subordinate", "add", "1", "2")
	assert.Equal(t, "Added employee 2 to manager 1.\n", out)
	assert.Contains(t, h.mustRun("employees", "show", "1"), "Subordinates: 2")

	err := h.run("employees", "subordinate", "add", "2", "1")
	assert.True(t, failure.IsValidation(err))

	err = h.run("employees", "update", "1", "--job-title", "designer")
	assert.True(t, failure.IsValidation(err))

	out = h.mustRun("employees", "subordinate", "remove", "1", "2")
	assert.Equal(t, "Removed employee 2 from manager 1.\n", out)

	err = h.run("employees", "subordinate", "remove", "1", "2")
	assert.True(t, failure.IsNotFound(err))
}

func TestAddRejectsInvalidInput(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown job title", args: []string{"employees", "add", "--name", "Kim", "--department", "Ops", "--job-title", "astronaut"}},
		{name: "malformed event date", args: []string{"events", "add", "--name", "Gala", "--type", "wedding", "--date", "01/06/2024", "--venue", "Hall", "--theme", "Gold"}},
		{name: "unknown service type", args: []string{"suppliers", "add", "--name", "Acme", "--service-type", "plumbing", "--contact", "555"}},
		{name: "missing guest name", args: []string{"guests", "add", "--last-name", "Hopper", "--contact", "555"}},
		{name: "invalid id", args: []string{"clients", "show", "first"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.run(tt.args...)

			require.Error(t, err)
			assert.True(t, failure.IsValidation(err), err.Error())
		})
	}
}

func TestEventAddDrawsInvoice(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("events", "add", "--name", "Summer Gala", "--type", "Corporate", "--date", "2024-07-01", "--venue", "Grand Hall", "--theme", "Gold")
	assert.Regexp(t, `^Added event 1 with invoice \d+\.\n$`, out)

	out = h.mustRun("events", "add", "--name", "Launch", "--type", "themed_party", "--date", "2024-08-01", "--venue", "Loft", "--theme", "Neon", "--invoice", "9000")
	assert.Equal(t, "Added event 2 with invoice 9000.\n", out)
}

func TestExportWritesSpreadsheet(t *testing.T) {
	h := newHarness(t)

	h.mustRun("suppliers", "add", "--name", "Tasty Bites", "--service-type", "Catering Company", "--contact", "555-0199")

	path := filepath.Join(t.TempDir(), "suppliers.xlsx")
	out := h.mustRun("suppliers", "export", "--out", path)
	assert.Equal(t, "Exported suppliers to "+path+".\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Supplier ID", rows[0][0])
	assert.Equal(t, "Tasty Bites", rows[1][1])
}
