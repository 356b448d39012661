package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common static errors used throughout the commands package.
var (
	errInvalidFilterFormat = errors.New("invalid filter")
	errRequestFailed       = errors.New("request failed")
	errNameRequired        = errors.New("name is required")
)

// parseFilterFlags converts repeated --filter key=value flags into query parameters.
func parseFilterFlags(filters []string) (ncm.Params, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	params := ncm.Params{}

	for _, filter := range filters {
		key, value, found := strings.Cut(filter, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q (expected key=value)", errInvalidFilterFormat, filter)
		}

		params[key] = value
	}

	return params, nil
}

// renderRecords writes a result set in the configured output format. Table
// output uses the union of keys across records, sorted, with "id" first.
func renderRecords(records *ncm.ResultSet, columns ...string) error {
	output := viper.GetString("output")

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		if err := encoder.Encode(records.Records); err != nil {
			return fmt.Errorf("failed to encode records as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(records.Records); err != nil {
			return fmt.Errorf("failed to encode records as YAML: %w", err)
		}

		return nil
	default:
		return renderRecordsTable(records, columns)
	}
}

func renderRecordsTable(records *ncm.ResultSet, columns []string) error {
	if records.Len() == 0 {
		_, _ = os.Stdout.WriteString("No results\n")

		return nil
	}

	if len(columns) == 0 {
		columns = collectColumns(records)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headerRow(columns)...)

	for _, record := range records.Records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = formatCellValue(record[column])
		}

		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if records.Truncated {
		_, _ = os.Stdout.WriteString("\nWarning: result set was truncated by an API error\n")
	}

	return nil
}

// renderRecord writes a single record as a property/value table, or as
// JSON/YAML when that output format is selected.
func renderRecord(record ncm.Record) error {
	output := viper.GetString("output")

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record as YAML: %w", err)
		}

		return nil
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		keys := make([]string, 0, len(record))
		for key := range record {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append([]string{key, formatCellValue(record[key])})
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// reportCallResult prints the outcome of a write operation.
func reportCallResult(label string, result *ncm.CallResult) error {
	if !result.OK() {
		body := result.Value()
		if len(body) > 0 {
			return fmt.Errorf("%w (%d): %s", errRequestFailed, result.StatusCode, string(body))
		}

		return fmt.Errorf("%w (%d)", errRequestFailed, result.StatusCode)
	}

	_, _ = fmt.Fprintln(os.Stdout, result.Outcome.Notice(label))

	return nil
}

// confirmDeletion prompts for interactive confirmation before a delete.
func confirmDeletion(entityType, name string) bool {
	_, _ = fmt.Fprintf(os.Stdout, "Really delete %s '%s'? (y/N): ", entityType, name)

	var response string

	_, _ = fmt.Scanln(&response)

	if response != "y" && response != "Y" {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return false
	}

	return true
}

func collectColumns(records *ncm.ResultSet) []string {
	seen := map[string]bool{}

	for _, record := range records.Records {
		for key := range record {
			seen[key] = true
		}
	}

	columns := make([]string, 0, len(seen))

	for key := range seen {
		if key != "id" {
			columns = append(columns, key)
		}
	}

	sort.Strings(columns)

	if seen["id"] {
		columns = append([]string{"id"}, columns...)
	}

	return columns
}

func headerRow(columns []string) []any {
	row := make([]any, len(columns))
	for i, column := range columns {
		row[i] = column
	}

	return row
}

func formatCellValue(value any) string {
	if value == nil {
		return constants.NotAvailable
	}

	text := fmt.Sprintf("%v", value)
	if len(text) > constants.StringTruncationLength {
		text = text[:constants.StringTruncationLength] + "..."
	}

	return text
}
