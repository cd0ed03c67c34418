package vehicles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// QuerySpec is the validated parameter set of one read request. It is
// ephemeral and never persisted.
type QuerySpec struct {
	Category  Category
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// ErrInvalidQuery marks client parameter errors that must be rejected
// before the store is touched.
type ErrInvalidQuery struct {
	Reason string
}

func (e *ErrInvalidQuery) Error() string {
	return e.Reason
}

// Validate enforces the pagination bounds: page >= 1 and
// limit in [1,100].
func (s QuerySpec) Validate() error {
	if s.Page < 1 {
		return &ErrInvalidQuery{Reason: "invalid page parameter"}
	}
	if s.Limit < 1 || s.Limit > 100 {
		return &ErrInvalidQuery{Reason: "invalid limit parameter"}
	}
	return nil
}

// Query is a matched pair of statements: the data page and the total
// count over the same filter, so page content and total always agree.
type Query struct {
	DataSQL   string
	DataArgs  []any
	CountSQL  string
	CountArgs []any
}

var comparatorSearch = regexp.MustCompile(`^(<=|>=|!=|<|>|=)(\d+\.?\d*)$`)

// comparators is the closed operator set; an operator lands in
// statement text only after passing this allow-list, never straight
// from client input.
var comparators = map[string]bool{
	"<": true, ">": true, "<=": true, ">=": true, "=": true, "!=": true,
}

// BuildQuery translates a QuerySpec into bounded, parameterized SQL.
// Search terms, limits and offsets are always bound; the only pieces
// spliced into statement text are table/column names owned by the
// registry and an allow-listed comparator.
func BuildQuery(spec QuerySpec) (Query, error) {
	err := spec.Validate()
	if err != nil {
		return Query{}, err
	}

	where, whereArgs := buildWhere(spec.Search)
	orderBy := buildOrderBy(spec)

	dataSQL := fmt.Sprintf("SELECT * FROM %s%s%s LIMIT ? OFFSET ?", spec.Category.Table(), where, orderBy)
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", spec.Category.Table(), where)

	offset := (spec.Page - 1) * spec.Limit
	dataArgs := append(append([]any{}, whereArgs...), spec.Limit, offset)

	return Query{
		DataSQL:   dataSQL,
		DataArgs:  dataArgs,
		CountSQL:  countSQL,
		CountArgs: whereArgs,
	}, nil
}

func buildWhere(search string) (string, []any) {
	if search == "" {
		return "", nil
	}

	if m := comparatorSearch.FindStringSubmatch(search); m != nil {
		op := m[1]
		if !comparators[op] {
			return "", nil
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return "", nil
		}
		// numeric comparisons always run against max_speed
		return fmt.Sprintf(" WHERE CAST(max_speed AS DECIMAL) %s ?", op), []any{value}
	}

	pattern := "%" + search + "%"
	return " WHERE (name LIKE ? OR nation LIKE ?)", []any{pattern, pattern}
}

func buildOrderBy(spec QuerySpec) string {
	if spec.SortBy == "" {
		return ""
	}

	field := MapSortField(spec.SortBy)
	if !AllowedSortFields(spec.Category)[field] {
		// unknown sort keys degrade to "no sort", they never fail
		// the request
		return ""
	}

	order := strings.ToUpper(spec.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	if NumericField(field) {
		return fmt.Sprintf(" ORDER BY CAST(%q AS DECIMAL) %s", field, order)
	}
	return fmt.Sprintf(" ORDER BY %q %s", field, order)
}
