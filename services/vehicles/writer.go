package vehicles

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/vehicles")

// PersistError reports one record the store refused. The pipeline
// logs it and moves on to the next record.
type PersistError struct {
	Category Category
	Vehicle  string
	Cause    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s '%s': %s", e.Category, e.Vehicle, e.Cause)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}

// Persist writes one assembled record into its category table inside
// its own transaction. Raw text is never interpolated into statement
// text: column names come from the registry, values are always bound.
func Persist(ctx context.Context, db *sql.DB, record Record) error {
	ctx, span := tracer.Start(ctx, "Persist")
	defer span.End()
	span.SetAttributes(
		attribute.String("category", string(record.Category)),
		attribute.String("vehicle", record.Name()),
	)

	columns := make([]string, 0, len(record.Fields))
	placeholders := make([]string, 0, len(record.Fields))
	args := make([]any, 0, len(record.Fields))
	for _, f := range record.Fields {
		columns = append(columns, fmt.Sprintf("%q", f.Name))
		placeholders = append(placeholders, "?")
		args = append(args, coerceForWrite(f).Arg())
	}

	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		record.Category.Table(),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &PersistError{Category: record.Category, Vehicle: record.Name(), Cause: err}
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &PersistError{Category: record.Category, Vehicle: record.Name(), Cause: err}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &PersistError{Category: record.Category, Vehicle: record.Name(), Cause: err}
	}
	return nil
}

// coerceForWrite applies write-time coercion on top of the
// extraction-time normalization. It tolerates being applied to
// already-normalized values.
func coerceForWrite(f RecordField) Value {
	switch f.Name {
	case "purchase", "research":
		// cost fields, not descriptive text
		if text, ok := f.Value.Text(); !ok || text == "" {
			return Text("0")
		}
	case "crew":
		if text, ok := f.Value.Text(); ok {
			return NormalizeDigits(text, NoValue())
		}
	}
	return f.Value
}
