package vehicles

import (
	"database/sql"
	"fmt"
	"strconv"
)

// ScanRowMap scans the current row into a column name keyed map.
// Storage schemas differ per category so rows are scanned
// dynamically instead of into a struct.
func ScanRowMap(rows *sql.Rows) (map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	err = rows.Scan(pointers...)
	if err != nil {
		return nil, err
	}
	row := make(map[string]any, len(columns))
	for i, column := range columns {
		row[column] = values[i]
	}
	return row, nil
}

// uniformFields appear in every API record no matter the category, so
// clients see one shape even though storage schemas differ. Rows of
// categories without them get "no value".
var uniformFields = []string{
	"optics_commander_zoom",
	"optics_gunner_zoom",
	"main_rotor_diameter",
}

// numericOutputFields derives, from the registry, the fields the API
// reports as numbers for a category. Cost fields are numeric on the
// way out even though they are stored as text.
func numericOutputFields(category Category) map[string]bool {
	out := map[string]bool{
		"purchase": true,
		"research": true,
	}
	for _, spec := range FieldsFor(category) {
		if spec.Kind == KindNumber || spec.Kind == KindDigits {
			out[spec.Name] = true
		}
	}
	return out
}

// Shape coerces one stored row into its API record: numeric fields
// become numbers (empty or unparseable → "no value", never an error),
// rank is decoded from its stored roman numeral back to the 1-8 scale
// it was ingested on, and the cross-category uniform fields are
// filled in.
func Shape(category Category, row map[string]any) map[string]any {
	numeric := numericOutputFields(category)

	out := make(map[string]any, len(row)+len(uniformFields))
	for name, value := range row {
		if numeric[name] {
			out[name] = coerceNumber(value)
			continue
		}
		out[name] = value
	}

	// rank is re-derived on every read instead of trusting a stored
	// integer, tolerating rows written across schema changes
	if raw, ok := out["rank"]; ok {
		out["rank"] = DecodeRank(asString(raw))
	}

	for _, name := range uniformFields {
		if _, ok := out[name]; !ok {
			out[name] = nil
		}
	}
	return out
}

func coerceNumber(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return v
	case int64:
		return float64(v)
	case []byte:
		return parseNumber(string(v))
	case string:
		return parseNumber(v)
	}
	return parseNumber(fmt.Sprint(value))
}

func parseNumber(s string) any {
	if s == "" {
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return num
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	}
	return fmt.Sprint(value)
}
