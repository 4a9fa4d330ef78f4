package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"
)

// table is the tabular result of a command. Rows are rendered as-is by the
// table formatter, and as a list of objects keyed by the lower-cased column
// names by the json and yaml formatters.
type table struct {
	columns []string
	rows    [][]string
}

func (t *table) append(values ...string) {
	t.rows = append(t.rows, values)
}

func (t *table) records() []map[string]string {
	records := make([]map[string]string, len(t.rows))
	for i, row := range t.rows {
		record := make(map[string]string, len(t.columns))
		for j, column := range t.columns {
			if j < len(row) {
				record[strings.ToLower(column)] = row[j]
			}
		}
		records[i] = record
	}
	return records
}

type formatter interface {
	format(w io.Writer, t *table) error
}

func newFormatter(name string) (formatter, error) {
	switch strings.ToLower(name) {
	case "", "table":
		return tableFormatter{}, nil
	case "json":
		return jsonFormatter{}, nil
	case "yaml":
		return yamlFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q (expected table, json or yaml)", name)
	}
}

type tableFormatter struct{}

func (tableFormatter) format(w io.Writer, t *table) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetColumnSeparator(" ")
	tw.SetHeaderLine(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.AppendBulk(t.rows)
	tw.Render()
	return nil
}

type jsonFormatter struct{}

func (jsonFormatter) format(w io.Writer, t *table) error {
	b, err := json.MarshalIndent(t.records(), "", "  ")
	if err != nil {
		return fmt.Errorf("formatting json output: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

type yamlFormatter struct{}

func (yamlFormatter) format(w io.Writer, t *table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.records()); err != nil {
		return fmt.Errorf("formatting yaml output: %w", err)
	}
	return enc.Close()
}
