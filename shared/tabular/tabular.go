// Package tabular renders collection listings as aligned text or as a spreadsheet.
package tabular

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet   = "Sheet1"
	maxSheetName   = 31
	emptyTableText = "No records found."
)

type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// WriteText writes the table with columns aligned on tab stops.
func (t Table) WriteText(w io.Writer) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, emptyTableText)

		return err //nolint:wrapcheck
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(t.Columns, "\t")); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}

	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(sanitize(row), "\t")); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	return nil
}

// WriteXLSX writes the table as a single-sheet workbook with a bold header row.
func (t Table) WriteXLSX(w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	sheet := sheetName(t.Title)
	if sheet != defaultSheet {
		if err = f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	header := make([]any, len(t.Columns))
	for i, column := range t.Columns {
		header[i] = column
	}

	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if len(t.Columns) > 0 {
		style, styleErr := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if styleErr != nil {
			return fmt.Errorf("failed to create header style: %w", styleErr)
		}

		lastCell, cellErr := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if cellErr != nil {
			return fmt.Errorf("failed to resolve header range: %w", cellErr)
		}

		if err = f.SetCellStyle(sheet, "A1", lastCell, style); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, row := range t.Rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return fmt.Errorf("failed to resolve row cell: %w", cellErr)
		}

		values := make([]any, len(row))
		for j, value := range row {
			values[j] = value
		}

		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}

		return r
	}, strings.TrimSpace(title))

	if name == "" {
		return defaultSheet
	}

	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}

	return name
}

// sanitize keeps multi-line values on a single table line.
func sanitize(row []string) []string {
	out := make([]string, len(row))
	for i, value := range row {
		out[i] = strings.NewReplacer("\n", " ", "\t", " ").Replace(value)
	}

	return out
}
