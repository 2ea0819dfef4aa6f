// Package normalize converts tagged service responses into the single shape
// the UI renders: plain text, a service-reported detail message, or a table
// of result records.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/memorise/nlpdemo/internal/nlp"
)

// scoreColumn is the confidence column attached to classification and entity
// records. It is dropped from every row before display.
const scoreColumn = "score"

// Kind tags a display result so the UI can style service-reported errors
// differently from real content.
type Kind string

const (
	KindText   Kind = "text"
	KindDetail Kind = "detail"
	KindTable  Kind = "table"
)

// Result is the display-ready form of a service response.
type Result struct {
	Kind  Kind   `json:"kind"`
	Text  string `json:"text"`
	Table *Table `json:"table,omitempty"`
}

// Table holds one row per result record. Column order follows the order of
// first appearance across the records; cells missing from a record are null.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Normalize is a pure function; calling it twice on the same response yields
// identical output. Dispatch order is text, then detail, then results.
func Normalize(resp *nlp.Response) (*Result, error) {
	switch resp.Kind() {
	case nlp.KindText:
		return &Result{Kind: KindText, Text: *resp.Text}, nil
	case nlp.KindDetail:
		return &Result{Kind: KindDetail, Text: *resp.Detail}, nil
	}

	table, err := buildTable(resp.Results)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: KindTable, Table: table}, nil
}

func buildTable(records []json.RawMessage) (*Table, error) {
	columns := []string{}
	seen := make(map[string]bool)
	hasScore := false

	decoded := make([]map[string]any, 0, len(records))
	for i, raw := range records {
		fields, err := decodeOrdered(raw)
		if err != nil {
			return nil, fmt.Errorf("result record %d: %w", i, err)
		}

		values := make(map[string]any, len(fields))
		for _, f := range fields {
			if f.key == scoreColumn {
				hasScore = true
			}
			if !seen[f.key] {
				seen[f.key] = true
				columns = append(columns, f.key)
			}
			values[f.key] = f.value
		}
		decoded = append(decoded, values)
	}

	if hasScore {
		kept := columns[:0]
		for _, col := range columns {
			if col != scoreColumn {
				kept = append(kept, col)
			}
		}
		columns = kept
	}

	rows := make([][]any, 0, len(decoded))
	for _, values := range decoded {
		row := make([]any, len(columns))
		for j, col := range columns {
			row[j] = values[col]
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

type field struct {
	key   string
	value any
}

// decodeOrdered decodes a JSON object preserving the wire order of its keys,
// which json.Unmarshal into a map would lose.
func decodeOrdered(raw json.RawMessage) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record is not a JSON object")
	}

	var fields []field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode record key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("record key is not a string")
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode record value for %q: %w", key, err)
		}
		fields = append(fields, field{key: key, value: value})
	}
	return fields, nil
}
