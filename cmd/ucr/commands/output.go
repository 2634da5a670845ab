package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const resultsKey = "results"

// tabular is a result body flattened into a header and rows of cells.
type tabular struct {
	Header []string
	Rows   [][]string
}

// renderResult writes the body of result in the given format.
func renderResult(w io.Writer, result *ucr.Result, format string) error {
	switch format {
	case constants.FormatJSON:
		return renderJSON(w, result.Body)
	case constants.FormatYAML:
		return renderYAML(w, result.Body)
	case constants.FormatMarkdown:
		return renderMarkdown(w, result)
	case constants.FormatTable:
		return renderTable(w, result)
	default:
		return &unsupportedFormatError{format: format}
	}
}

func renderJSON(w io.Writer, body []byte) error {
	var indented bytes.Buffer

	err := json.Indent(&indented, body, "", "  ")
	if err != nil {
		// Not JSON; pass it through unchanged.
		_, err = w.Write(body)
		if err != nil {
			return fmt.Errorf("failed to write response body: %w", err)
		}

		return nil
	}

	indented.WriteByte('\n')

	_, err = indented.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, body []byte) error {
	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err = encoder.Encode(decoded)
	if err != nil {
		return fmt.Errorf("failed to encode response as YAML: %w", err)
	}

	return encoder.Close()
}

func renderTable(w io.Writer, result *ucr.Result) error {
	data, err := flatten(result.Body)
	if err != nil {
		return err
	}

	if len(data.Rows) == 0 {
		_, _ = io.WriteString(w, "No results found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(toCells(data.Header)...)

	for _, row := range data.Rows {
		_ = table.Append(toCells(row)...)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if summary := paginationSummary(result); summary != "" {
		_, _ = fmt.Fprintln(w, summary)
	}

	return nil
}

func renderMarkdown(w io.Writer, result *ucr.Result) error {
	data, err := flatten(result.Body)
	if err != nil {
		return err
	}

	md := markdown.NewMarkdown(w)
	md.H2(result.Path)
	md.PlainText("")

	if len(data.Rows) == 0 {
		md.PlainText("No results found")
	} else {
		md.Table(markdown.TableSet{
			Header: data.Header,
			Rows:   data.Rows,
		})
	}

	if summary := paginationSummary(result); summary != "" {
		md.PlainText("")
		md.PlainText(summary)
	}

	err = md.Build()
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	return nil
}

// flatten turns a response body into rows. A "results" array or a top-level
// array becomes one row per element with the union of keys as columns; any
// other object becomes property/value rows.
func flatten(body []byte) (*tabular, error) {
	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	switch value := decoded.(type) {
	case []interface{}:
		return flattenList(value), nil
	case map[string]interface{}:
		if results, ok := value[resultsKey].([]interface{}); ok {
			return flattenList(results), nil
		}

		return flattenObject(value), nil
	default:
		return &tabular{Header: []string{"Value"}, Rows: [][]string{{cell(value)}}}, nil
	}
}

func flattenList(items []interface{}) *tabular {
	columns := map[string]bool{}

	for _, item := range items {
		if object, ok := item.(map[string]interface{}); ok {
			for key := range object {
				columns[key] = true
			}
		}
	}

	if len(columns) == 0 {
		data := &tabular{Header: []string{"Value"}}
		for _, item := range items {
			data.Rows = append(data.Rows, []string{cell(item)})
		}

		return data
	}

	header := sortedKeys(columns)
	data := &tabular{Header: header}

	for _, item := range items {
		object, _ := item.(map[string]interface{})
		row := make([]string, len(header))

		for i, column := range header {
			value, present := object[column]
			if !present {
				row[i] = constants.NotAvailable

				continue
			}

			row[i] = cell(value)
		}

		data.Rows = append(data.Rows, row)
	}

	return data
}

func flattenObject(object map[string]interface{}) *tabular {
	keys := make(map[string]bool, len(object))
	for key := range object {
		keys[key] = true
	}

	data := &tabular{Header: []string{"Property", "Value"}}
	for _, key := range sortedKeys(keys) {
		data.Rows = append(data.Rows, []string{key, cell(object[key])})
	}

	return data
}

// cell formats a JSON value for one table cell; nested values stay compact JSON.
func cell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

// paginationSummary describes the pagination envelope, if the body has one.
func paginationSummary(result *ucr.Result) string {
	var probe struct {
		Pagination *ucr.Pagination `json:"pagination"`
	}

	if json.Unmarshal(result.Body, &probe) != nil || probe.Pagination == nil {
		return ""
	}

	page, err := ucr.DecodePage[json.RawMessage](result)
	if err != nil {
		return ""
	}

	summary := fmt.Sprintf("Page %d of %d (%d results)", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Count)
	if page.HasNext() {
		summary += fmt.Sprintf(", next page: %d", page.Pagination.Page+1)
	}

	return summary
}
