package core_test

import (
	"context"
	"os"
	"testing"

	"job-board/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Schema comes from migrations/schema.sql (applied via cmd/seed).
	_, err = pool.Exec(ctx, `TRUNCATE TABLE jobs, companies, users CASCADE`)
	if err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	return pool
}

func seedCompanies(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO companies (handle, name, num_employees) VALUES
		('nike', 'Nike', 30000),
		('apple', 'Apple', 100000),
		('sans-serif-labs', 'Sans Serif Labs', 1)
	`)
	if err != nil {
		t.Fatalf("Failed to seed companies: %v", err)
	}
}

func TestCompany_ListFiltering(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	seedCompanies(t, pool)
	svc := core.NewCompanyService(pool)

	t.Run("EmptyFilter_ReturnsAll", func(t *testing.T) {
		companies, err := svc.List(ctx, core.CompanyFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(companies) != 3 {
			t.Errorf("expected 3 companies, got %d", len(companies))
		}
	})

	t.Run("EmployeeRange_ReturnsExactlyNike", func(t *testing.T) {
		companies, err := svc.List(ctx, core.CompanyFilter{
			MinEmployees: intPointer(2),
			MaxEmployees: intPointer(50000),
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(companies) != 1 || companies[0].Handle != "nike" {
			t.Errorf("expected exactly [nike], got %v", companies)
		}
	})

	t.Run("Search_MatchesSubstring", func(t *testing.T) {
		companies, err := svc.List(ctx, core.CompanyFilter{Search: stringPointer("pp")})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(companies) != 1 || companies[0].Handle != "apple" {
			t.Errorf("expected [apple], got %v", companies)
		}
	})

	t.Run("MinAboveMax_FailsBeforeStorage", func(t *testing.T) {
		_, err := svc.List(ctx, core.CompanyFilter{
			MinEmployees: intPointer(100),
			MaxEmployees: intPointer(10),
		})
		e, ok := core.AsError(err)
		if !ok || e.Code != core.CodeValidation || e.Status != 400 {
			t.Errorf("expected 400 validation error, got %v", err)
		}
	})
}

func TestCompany_CRUDRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewCompanyService(pool)

	in := core.CompanyInput{
		Handle:       "acme",
		Name:         "Acme Corp",
		NumEmployees: intPointer(42),
		Description:  stringPointer("anvils and rockets"),
	}

	t.Run("Create_ReturnsPersistedRow", func(t *testing.T) {
		c, err := svc.Create(ctx, in)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if c.Handle != "acme" || c.Name != "Acme Corp" {
			t.Errorf("unexpected row: %+v", c)
		}
		if c.NumEmployees == nil || *c.NumEmployees != 42 {
			t.Errorf("expected num_employees 42, got %v", c.NumEmployees)
		}
		if c.LogoURL != nil {
			t.Errorf("expected nil logo_url, got %v", *c.LogoURL)
		}
	})

	t.Run("Get_ReturnsSameValues", func(t *testing.T) {
		d, err := svc.Get(ctx, "acme")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if d.Name != "Acme Corp" || d.Description == nil || *d.Description != "anvils and rockets" {
			t.Errorf("round-trip mismatch: %+v", d)
		}
		if len(d.Jobs) != 0 {
			t.Errorf("expected no jobs, got %d", len(d.Jobs))
		}
	})

	t.Run("Create_Duplicate_Conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, in)
		e, ok := core.AsError(err)
		if !ok || e.Code != core.CodeConflict || e.Status != 400 {
			t.Errorf("expected 400 conflict, got %v", err)
		}
	})

	t.Run("Update_TouchesOnlySuppliedColumns", func(t *testing.T) {
		c, err := svc.Update(ctx, "acme", core.CompanyUpdate{Name: stringPointer("Acme Corp Ltd")})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if c.Name != "Acme Corp Ltd" {
			t.Errorf("expected updated name, got %q", c.Name)
		}
		if c.NumEmployees == nil || *c.NumEmployees != 42 {
			t.Errorf("untouched column changed: %v", c.NumEmployees)
		}
	})

	t.Run("Update_EmptyPayload_FailsFast", func(t *testing.T) {
		_, err := svc.Update(ctx, "acme", core.CompanyUpdate{})
		e, ok := core.AsError(err)
		if !ok || e.Code != core.CodeValidation {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Update_MissingHandle_NotFound", func(t *testing.T) {
		_, err := svc.Update(ctx, "ghost", core.CompanyUpdate{Name: stringPointer("x")})
		e, ok := core.AsError(err)
		if !ok || e.Code != core.CodeNotFound || e.Status != 400 {
			t.Errorf("expected 400 not-found, got %v", err)
		}
	})

	t.Run("Delete_ThenDeleteAgain_NotFound", func(t *testing.T) {
		if err := svc.Delete(ctx, "acme"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		err := svc.Delete(ctx, "acme")
		e, ok := core.AsError(err)
		if !ok || e.Code != core.CodeNotFound {
			t.Errorf("expected not-found on second delete, got %v", err)
		}
	})
}

func intPointer(i int) *int          { return &i }
func stringPointer(s string) *string { return &s }
