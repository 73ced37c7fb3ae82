package core

import (
	"fmt"
	"strings"
)

// Field is one (column, value) pair for the insert and partial-update
// builders. A nil Value marks the field as absent.
type Field struct {
	Column string
	Value  any
}

// metaPrefix marks transport metadata that must never reach the database.
// Columns carrying it are discarded by the statement builders.
const metaPrefix = "_"

// The three fragment builders emit one boolean predicate each, referencing a
// 1-based positional placeholder. They never bind values — that is the
// composer's job — and their exact output is asserted byte-for-byte by
// tests, so the SQL spelling below is a compatibility contract. Statements
// assembled from them carry no trailing semicolon.

// SearchFragment is a case-sensitive substring match on a text column.
func SearchFragment(column string, i int) string {
	return fmt.Sprintf("%s LIKE '%%' || $%d || '%%'", column, i)
}

// MinFragment is an inclusive lower bound on a numeric column.
func MinFragment(column string, i int) string {
	return fmt.Sprintf("%s >= $%d", column, i)
}

// MaxFragment is an inclusive upper bound on a numeric column.
func MaxFragment(column string, i int) string {
	return fmt.Sprintf("%s <= $%d", column, i)
}

// BuildFilteredSelect wraps non-empty predicates in a parenthesised WHERE
// clause appended to the projection. suffix, when non-empty, is appended
// verbatim after the WHERE clause (job queries use it for their fixed
// ordering). Callers with zero active filters must take their unfiltered
// statement path instead of calling this.
func BuildFilteredSelect(projection string, predicates []string, suffix string) (string, error) {
	if len(predicates) == 0 {
		return "", fmt.Errorf("filtered select requires at least one predicate")
	}
	return projection + " WHERE (" + strings.Join(predicates, " AND ") + ")" + suffix, nil
}

// BuildPartialUpdate generates an UPDATE statement touching only the
// supplied columns, keyed by keyCol. Fields whose column carries the
// metadata prefix are discarded before SQL is built; an update left empty
// after that is a malformed request, not a no-op.
func BuildPartialUpdate(table string, fields []Field, keyCol string, keyVal any) (string, []any, error) {
	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields)+1)

	idx := 1
	for _, f := range fields {
		if strings.HasPrefix(f.Column, metaPrefix) {
			continue
		}
		columns = append(columns, fmt.Sprintf("%s=$%d", f.Column, idx))
		values = append(values, f.Value)
		idx++
	}
	if len(columns) == 0 {
		return "", nil, NewValidation("no updatable fields supplied")
	}

	values = append(values, keyVal)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s=$%d RETURNING *",
		table, strings.Join(columns, ", "), keyCol, idx)
	return query, values, nil
}

// BuildInsert generates an INSERT touching only the defined fields,
// preserving encounter order, with the given RETURNING projection. Fields
// with a nil value or a metadata-prefixed column are dropped.
func BuildInsert(table string, fields []Field, returning string) (string, []any, error) {
	columns := make([]string, 0, len(fields))
	placeholders := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))

	for _, f := range fields {
		if f.Value == nil || strings.HasPrefix(f.Column, metaPrefix) {
			continue
		}
		columns = append(columns, f.Column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(values)+1))
		values = append(values, f.Value)
	}
	if len(columns) == 0 {
		return "", nil, NewValidation("no fields supplied for insert")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), returning)
	return query, values, nil
}

// buildCompanyListQuery composes the filtered company list statement. The
// walk order — search, then lower bound, then upper bound — is fixed so that
// placeholder numbering is deterministic. Callers must have rejected empty
// filters already.
func buildCompanyListQuery(f CompanyFilter) (string, []any, error) {
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return "", nil, NewValidation("min_employees must be less than or equal to max_employees")
	}

	var predicates []string
	var values []any

	if f.Search != nil {
		predicates = append(predicates, SearchFragment("name", len(values)+1))
		values = append(values, *f.Search)
	}
	if f.MinEmployees != nil {
		predicates = append(predicates, MinFragment("num_employees", len(values)+1))
		values = append(values, *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		predicates = append(predicates, MaxFragment("num_employees", len(values)+1))
		values = append(values, *f.MaxEmployees)
	}

	query, err := BuildFilteredSelect(companyListProjection, predicates, "")
	if err != nil {
		return "", nil, err
	}
	return query, values, nil
}

// buildJobListQuery composes the filtered job list statement. Jobs are
// always ordered newest-posted first, filters or not. Both salary and
// equity bounds are lower bounds; equity above 1 can never match and is
// rejected as a bad request.
func buildJobListQuery(f JobFilter) (string, []any, error) {
	if f.MinEquity != nil && f.MinEquity.GreaterThan(maxEquity) {
		return "", nil, NewValidation("invalid min_equity parameter value, must be between 0 and 1 inclusive")
	}

	var predicates []string
	var values []any

	if f.Search != nil {
		predicates = append(predicates, SearchFragment("title", len(values)+1))
		values = append(values, *f.Search)
	}
	if f.MinSalary != nil {
		predicates = append(predicates, MinFragment("salary", len(values)+1))
		values = append(values, *f.MinSalary)
	}
	if f.MinEquity != nil {
		predicates = append(predicates, MinFragment("equity", len(values)+1))
		values = append(values, *f.MinEquity)
	}

	query, err := BuildFilteredSelect(jobListProjection, predicates, jobListOrder)
	if err != nil {
		return "", nil, err
	}
	return query, values, nil
}
