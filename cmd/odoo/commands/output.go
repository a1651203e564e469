package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const defaultJSONIndent = 2

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderResult writes an operation result in the requested format.
func renderResult(w io.Writer, format string, result interface{}) error {
	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, result)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, result)
	case constants.FormatTable, "":
		return renderTable(w, result)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, format)
	}
}

func renderTable(w io.Writer, result interface{}) error {
	switch value := result.(type) {
	case []interface{}:
		if len(value) == 0 {
			_, _ = io.WriteString(w, "No records found\n")

			return nil
		}

		if records, ok := asRecords(value); ok {
			return renderRecordTable(w, records)
		}

		table := tablewriter.NewWriter(w)
		table.Header("Value")

		for _, item := range value {
			_ = table.Append(formatCell(item))
		}

		return table.Render()
	case map[string]interface{}:
		table := tablewriter.NewWriter(w)
		table.Header("Key", "Value")

		for _, key := range sortedKeys(value) {
			_ = table.Append(key, formatCell(value[key]))
		}

		return table.Render()
	default:
		_, err := fmt.Fprintln(w, formatCell(value))

		return err
	}
}

func renderRecordTable(w io.Writer, records []map[string]interface{}) error {
	columns := recordColumns(records)

	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, record := range records {
		row := make([]interface{}, len(columns))
		for i, column := range columns {
			row[i] = formatCell(record[column])
		}

		_ = table.Append(row...)
	}

	return table.Render()
}

func asRecords(items []interface{}) ([]map[string]interface{}, bool) {
	records := make([]map[string]interface{}, 0, len(items))

	for _, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}

		records = append(records, record)
	}

	return records, true
}

// recordColumns returns the union of record fields, "id" first and the rest sorted.
func recordColumns(records []map[string]interface{}) []string {
	seen := make(map[string]struct{})
	columns := []string{}
	hasID := false

	for _, record := range records {
		for key := range record {
			if key == "id" {
				hasID = true

				continue
			}

			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
	}

	sort.Strings(columns)

	if hasID {
		columns = append([]string{"id"}, columns...)
	}

	return columns
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}, map[string]interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
