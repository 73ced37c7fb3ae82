package core

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFragments(t *testing.T) {
	if got, want := SearchFragment("name", 1), `name LIKE '%' || $1 || '%'`; got != want {
		t.Errorf("SearchFragment = %q, want %q", got, want)
	}
	if got, want := MinFragment("num_employees", 2), `num_employees >= $2`; got != want {
		t.Errorf("MinFragment = %q, want %q", got, want)
	}
	if got, want := MaxFragment("num_employees", 3), `num_employees <= $3`; got != want {
		t.Errorf("MaxFragment = %q, want %q", got, want)
	}
}

func TestBuildCompanyListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    CompanyFilter
		wantQuery string
		wantVals  []any
		wantErr   bool
	}{
		{
			name:      "search only",
			filter:    CompanyFilter{Search: strPtr("x")},
			wantQuery: `SELECT handle, name FROM companies WHERE (name LIKE '%' || $1 || '%')`,
			wantVals:  []any{"x"},
		},
		{
			name:      "empty search string still filters",
			filter:    CompanyFilter{Search: strPtr("")},
			wantQuery: `SELECT handle, name FROM companies WHERE (name LIKE '%' || $1 || '%')`,
			wantVals:  []any{""},
		},
		{
			name:      "all three in fixed order",
			filter:    CompanyFilter{Search: strPtr("net"), MinEmployees: intPtr(10), MaxEmployees: intPtr(500)},
			wantQuery: `SELECT handle, name FROM companies WHERE (name LIKE '%' || $1 || '%' AND num_employees >= $2 AND num_employees <= $3)`,
			wantVals:  []any{"net", 10, 500},
		},
		{
			name:      "zero is a valid lower bound",
			filter:    CompanyFilter{MinEmployees: intPtr(0)},
			wantQuery: `SELECT handle, name FROM companies WHERE (num_employees >= $1)`,
			wantVals:  []any{0},
		},
		{
			name:      "bounds only, no leading AND",
			filter:    CompanyFilter{MinEmployees: intPtr(2), MaxEmployees: intPtr(50000)},
			wantQuery: `SELECT handle, name FROM companies WHERE (num_employees >= $1 AND num_employees <= $2)`,
			wantVals:  []any{2, 50000},
		},
		{
			name:    "min greater than max fails before SQL",
			filter:  CompanyFilter{MinEmployees: intPtr(10), MaxEmployees: intPtr(5)},
			wantErr: true,
		},
		{
			name:      "equal bounds are allowed",
			filter:    CompanyFilter{MinEmployees: intPtr(7), MaxEmployees: intPtr(7)},
			wantQuery: `SELECT handle, name FROM companies WHERE (num_employees >= $1 AND num_employees <= $2)`,
			wantVals:  []any{7, 7},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, vals, err := buildCompanyListQuery(tc.filter)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				e, ok := AsError(err)
				if !ok || e.Code != CodeValidation || e.Status != 400 {
					t.Errorf("expected 400 validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildCompanyListQuery: %v", err)
			}
			if query != tc.wantQuery {
				t.Errorf("query = %q, want %q", query, tc.wantQuery)
			}
			if !reflect.DeepEqual(vals, tc.wantVals) {
				t.Errorf("vals = %v, want %v", vals, tc.wantVals)
			}
		})
	}
}

func TestBuildJobListQuery(t *testing.T) {
	t.Run("search only, ordering always present", func(t *testing.T) {
		query, vals, err := buildJobListQuery(JobFilter{Search: strPtr("engineer")})
		if err != nil {
			t.Fatalf("buildJobListQuery: %v", err)
		}
		want := `SELECT title, company_handle FROM jobs WHERE (title LIKE '%' || $1 || '%') ORDER BY date_posted DESC`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
		if len(vals) != 1 || vals[0] != "engineer" {
			t.Errorf("vals = %v, want [engineer]", vals)
		}
	})

	t.Run("all three in fixed order", func(t *testing.T) {
		f := JobFilter{Search: strPtr("dev"), MinSalary: decPtr("90000"), MinEquity: decPtr("0.1")}
		query, vals, err := buildJobListQuery(f)
		if err != nil {
			t.Fatalf("buildJobListQuery: %v", err)
		}
		want := `SELECT title, company_handle FROM jobs WHERE (title LIKE '%' || $1 || '%' AND salary >= $2 AND equity >= $3) ORDER BY date_posted DESC`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
		if len(vals) != 3 {
			t.Fatalf("expected 3 values, got %d", len(vals))
		}
	})

	t.Run("equity above one is rejected", func(t *testing.T) {
		_, _, err := buildJobListQuery(JobFilter{MinEquity: decPtr("1.5")})
		e, ok := AsError(err)
		if !ok || e.Code != CodeValidation {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("equity of exactly one is allowed", func(t *testing.T) {
		query, _, err := buildJobListQuery(JobFilter{MinEquity: decPtr("1")})
		if err != nil {
			t.Fatalf("buildJobListQuery: %v", err)
		}
		want := `SELECT title, company_handle FROM jobs WHERE (equity >= $1) ORDER BY date_posted DESC`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
	})
}

func TestBuildFilteredSelect_RejectsEmpty(t *testing.T) {
	if _, err := BuildFilteredSelect("SELECT handle, name FROM companies", nil, ""); err == nil {
		t.Error("expected error for empty predicate list, got nil")
	}
}

func TestBuildPartialUpdate(t *testing.T) {
	t.Run("two fields keyed by id", func(t *testing.T) {
		query, vals, err := BuildPartialUpdate("t",
			[]Field{{Column: "a", Value: 1}, {Column: "b", Value: 2}}, "id", 5)
		if err != nil {
			t.Fatalf("BuildPartialUpdate: %v", err)
		}
		want := `UPDATE t SET a=$1, b=$2 WHERE id=$3 RETURNING *`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
		if !reflect.DeepEqual(vals, []any{1, 2, 5}) {
			t.Errorf("vals = %v, want [1 2 5]", vals)
		}
	})

	t.Run("metadata columns never reach SQL", func(t *testing.T) {
		query, vals, err := BuildPartialUpdate("users",
			[]Field{{Column: "_token", Value: "jwt"}, {Column: "email", Value: "a@b.com"}},
			"username", "alice")
		if err != nil {
			t.Fatalf("BuildPartialUpdate: %v", err)
		}
		want := `UPDATE users SET email=$1 WHERE username=$2 RETURNING *`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
		if !reflect.DeepEqual(vals, []any{"a@b.com", "alice"}) {
			t.Errorf("vals = %v", vals)
		}
	})

	t.Run("empty after stripping fails fast", func(t *testing.T) {
		_, _, err := BuildPartialUpdate("users",
			[]Field{{Column: "_token", Value: "jwt"}}, "username", "alice")
		e, ok := AsError(err)
		if !ok || e.Code != CodeValidation || e.Status != 400 {
			t.Errorf("expected 400 validation error, got %v", err)
		}
	})

	t.Run("no fields at all fails fast", func(t *testing.T) {
		if _, _, err := BuildPartialUpdate("t", nil, "id", 1); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestBuildInsert(t *testing.T) {
	t.Run("order preserved", func(t *testing.T) {
		query, vals, err := BuildInsert("companies",
			[]Field{{Column: "handle", Value: "nike"}, {Column: "name", Value: "Nike"}},
			"handle, name, num_employees, description, logo_url")
		if err != nil {
			t.Fatalf("BuildInsert: %v", err)
		}
		want := `INSERT INTO companies (handle, name) VALUES ($1, $2) RETURNING handle, name, num_employees, description, logo_url`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
		if !reflect.DeepEqual(vals, []any{"nike", "Nike"}) {
			t.Errorf("vals = %v", vals)
		}
	})

	t.Run("nil fields are dropped", func(t *testing.T) {
		query, vals, err := BuildInsert("t",
			[]Field{{Column: "x", Value: "v"}, {Column: "y", Value: nil}}, "*")
		if err != nil {
			t.Fatalf("BuildInsert: %v", err)
		}
		want := `INSERT INTO t (x) VALUES ($1) RETURNING *`
		if query != want {
			t.Errorf("query = %q, want %q", query, want)
		}
		if !reflect.DeepEqual(vals, []any{"v"}) {
			t.Errorf("vals = %v", vals)
		}
	})

	t.Run("all fields nil fails fast", func(t *testing.T) {
		_, _, err := BuildInsert("t", []Field{{Column: "y", Value: nil}}, "*")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestUpdatePayloadFieldOrder(t *testing.T) {
	u := CompanyUpdate{
		Name:         strPtr("Acme"),
		NumEmployees: intPtr(12),
		LogoURL:      strPtr("https://acme.test/logo.png"),
	}
	query, vals, err := BuildPartialUpdate("companies", u.Fields(), "handle", "acme")
	if err != nil {
		t.Fatalf("BuildPartialUpdate: %v", err)
	}
	want := `UPDATE companies SET name=$1, num_employees=$2, logo_url=$3 WHERE handle=$4 RETURNING *`
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(vals, []any{"Acme", 12, "https://acme.test/logo.png", "acme"}) {
		t.Errorf("vals = %v", vals)
	}
}
