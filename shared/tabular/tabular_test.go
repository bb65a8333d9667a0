package tabular_test

import (
	"bestevents/shared/tabular"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func venues() tabular.Table {
	return tabular.Table{
		Title:   "Venues",
		Columns: []string{"ID", "Name", "Address"},
		Rows: [][]string{
			{"1", "Grand Hall", "1 Main St"},
			{"2", "Garden", "5 Park Lane\nRear entrance"},
		},
	}
}

func TestTable_WriteText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, venues().WriteText(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Grand Hall")
	assert.Contains(t, lines[2], "5 Park Lane Rear entrance")
	assert.Equal(t, strings.Index(lines[0], "Name"), strings.Index(lines[1], "Grand Hall"), "columns must be aligned")
}

func TestTable_WriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, tabular.Table{Columns: []string{"ID"}}.WriteText(&buf))

	assert.Equal(t, "No records found.\n", buf.String())
}

func TestTable_WriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, venues().WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, "Venues", f.GetSheetName(0))

	rows, err := f.GetRows("Venues")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Name", "Address"}, rows[0])
	assert.Equal(t, []string{"1", "Grand Hall", "1 Main St"}, rows[1])
	assert.Equal(t, "5 Park Lane\nRear entrance", rows[2][2])
}

func TestTable_WriteXLSXSheetName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "empty title", title: "", want: "Sheet1"},
		{name: "invalid characters", title: "Clients/Events", want: "Clients-Events"},
		{name: "long title", title: strings.Repeat("x", 40), want: strings.Repeat("x", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			table := tabular.Table{Title: tt.title, Columns: []string{"ID"}}
			require.NoError(t, table.WriteXLSX(&buf))

			f, err := excelize.OpenReader(&buf)
			require.NoError(t, err)
			t.Cleanup(func() { _ = f.Close() })

			assert.Equal(t, tt.want, f.GetSheetName(0))
		})
	}
}
