package vehicles

import (
	"context"
	"log/slog"
	"strings"
)

// Record is one assembled vehicle: an ordered value per declared
// field of its category. Records are total: every declared field has
// a value (possibly the declared default), never "missing". They are
// immutable after assembly and written exactly once.
type Record struct {
	Category Category
	Fields   []RecordField
}

type RecordField struct {
	Name  string
	Value Value
}

// Get returns the value of a field by storage name.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Name returns the vehicle name, mostly for log lines.
func (r Record) Name() string {
	v, _ := r.Get("name")
	return v.String()
}

// Assemble extracts and normalizes every declared field of `category`
// out of one vehicle page. A field whose locator finds nothing gets
// its declared default; nothing a single field does can abort the
// record. No network or storage side effects happen here.
func Assemble(ctx context.Context, doc DocumentSource, category Category) Record {
	specs := FieldsFor(category)
	record := Record{
		Category: category,
		Fields:   make([]RecordField, 0, len(specs)),
	}

	for _, spec := range specs {
		raw, ok := extractRaw(doc, spec)
		var value Value
		if !ok {
			value = spec.Default
			slog.DebugContext(ctx, "field absent, using default",
				"category", category, "field", spec.Name)
		} else {
			value = normalizeField(spec, raw)
		}
		record.Fields = append(record.Fields, RecordField{
			Name:  spec.Name,
			Value: value,
		})
	}

	return record
}

func extractRaw(doc DocumentSource, spec FieldSpec) (string, bool) {
	var raw string
	if spec.Indexed {
		all := doc.LocateAll(spec.Loc)
		if spec.Index >= len(all) {
			return "", false
		}
		raw = all[spec.Index]
	} else {
		var ok bool
		raw, ok = doc.Locate(spec.Loc)
		if !ok {
			return "", false
		}
	}

	if spec.FirstLine {
		raw, _, _ = strings.Cut(raw, "\n")
	}
	if spec.TrimUnit {
		raw, _, _ = strings.Cut(raw, " ")
	}
	return raw, true
}

func normalizeField(spec FieldSpec, raw string) Value {
	switch spec.Kind {
	case KindNumber:
		return NormalizeNumber(raw)
	case KindDigits:
		return NormalizeDigits(raw, spec.Default)
	default:
		// rank stays roman-numeral text in storage, so KindRank
		// normalizes like free text
		return NormalizeFreeText(raw, spec.Default)
	}
}
