package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-datafilter/data"
)

var errEmptyInput = errors.New("empty input")

// readCSV loads a CSV stream into a float table. Empty cells become nulls.
func readCSV(in io.Reader, header bool) ([]string, *data.Table, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errEmptyInput
	}

	ncols := len(records[0])
	var names []string
	if header {
		names = records[0]
		records = records[1:]
	} else {
		names = make([]string, ncols)
		for i := range names {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}

	types := make([]data.ColumnType, ncols)
	tab := data.NewTable(types...)
	row := make([]any, ncols)
	for i, rec := range records {
		for j, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				row[j] = nil
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d, column %d: %w", i+1, j, err)
			}
			row[j] = v
		}
		if err := tab.Add(row...); err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return names, tab, nil
}

func formatCell(c data.Cell) string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

func writeTable(w io.Writer, names []string, src data.Source) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(names, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	dashes := make([]string, len(names))
	for i, n := range names {
		dashes[i] = strings.Repeat("-", max(len(n), 1))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(dashes, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	fields := make([]string, src.ColumnCount())
	for row := range src.RowCount() {
		for col := range fields {
			c, err := src.Get(col, row)
			if err != nil {
				return err
			}
			fields[col] = formatCell(c)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(fields, "\t")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, names []string, src data.Source) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}
	fields := make([]string, src.ColumnCount())
	for row := range src.RowCount() {
		for col := range fields {
			c, err := src.Get(col, row)
			if err != nil {
				return err
			}
			fields[col] = formatCell(c)
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
