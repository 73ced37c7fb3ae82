package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyListProjection = "SELECT handle, name FROM companies"

// CompanyService provides CRUD operations over the companies table.
type CompanyService interface {
	// List returns company summaries matching the filter; an empty filter
	// returns every company.
	List(ctx context.Context, f CompanyFilter) ([]CompanySummary, error)

	// Get returns one company with its jobs, newest first.
	Get(ctx context.Context, handle string) (*CompanyDetail, error)

	// Create inserts a new company and returns the persisted row.
	Create(ctx context.Context, in CompanyInput) (*Company, error)

	// Update applies a partial update keyed by handle.
	Update(ctx context.Context, handle string, u CompanyUpdate) (*Company, error)

	// Delete removes a company; deleting a missing handle is an error.
	Delete(ctx context.Context, handle string) error
}

type companyService struct {
	pool *pgxpool.Pool
}

// NewCompanyService constructs a CompanyService backed by PostgreSQL.
func NewCompanyService(pool *pgxpool.Pool) CompanyService {
	return &companyService{pool: pool}
}

func (s *companyService) List(ctx context.Context, f CompanyFilter) ([]CompanySummary, error) {
	// Unfiltered requests take a distinct statement, not a degenerate WHERE.
	query := companyListProjection
	var values []any

	if !f.Empty() {
		var err error
		query, values, err = buildCompanyListQuery(f)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.pool.Query(ctx, query, values...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]CompanySummary, 0)
	for rows.Next() {
		var c CompanySummary
		if err := rows.Scan(&c.Handle, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *companyService) Get(ctx context.Context, handle string) (*CompanyDetail, error) {
	d := &CompanyDetail{}
	err := s.pool.QueryRow(ctx, `
		SELECT handle, name, num_employees, description, logo_url
		FROM companies
		WHERE handle=$1`,
		handle,
	).Scan(&d.Handle, &d.Name, &d.NumEmployees, &d.Description, &d.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No company found with handle %q", handle)
		}
		return nil, fmt.Errorf("get company %q: %w", handle, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT title, company_handle
		FROM jobs
		WHERE company_handle=$1
		ORDER BY date_posted DESC`,
		handle,
	)
	if err != nil {
		return nil, fmt.Errorf("get company jobs %q: %w", handle, err)
	}
	defer rows.Close()

	d.Jobs = make([]JobSummary, 0)
	for rows.Next() {
		var j JobSummary
		if err := rows.Scan(&j.Title, &j.CompanyHandle); err != nil {
			return nil, fmt.Errorf("scan company job: %w", err)
		}
		d.Jobs = append(d.Jobs, j)
	}
	return d, rows.Err()
}

func (s *companyService) Create(ctx context.Context, in CompanyInput) (*Company, error) {
	query, values, err := BuildInsert("companies", in.fields(),
		"handle, name, num_employees, description, logo_url")
	if err != nil {
		return nil, err
	}

	c := &Company{}
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL)
	if err != nil {
		return nil, translateConstraint(err,
			fmt.Sprintf("Company with handle %q already exists", in.Handle),
			fmt.Sprintf("invalid reference in company %q", in.Handle))
	}
	return c, nil
}

func (s *companyService) Update(ctx context.Context, handle string, u CompanyUpdate) (*Company, error) {
	query, values, err := BuildPartialUpdate("companies", u.Fields(), "handle", handle)
	if err != nil {
		return nil, err
	}

	c := &Company{}
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No company found with handle %q", handle)
		}
		return nil, fmt.Errorf("update company %q: %w", handle, err)
	}
	return c, nil
}

func (s *companyService) Delete(ctx context.Context, handle string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM companies WHERE handle=$1`, handle)
	if err != nil {
		return fmt.Errorf("delete company %q: %w", handle, err)
	}
	if tag.RowsAffected() == 0 {
		return NewNotFound("No company found with handle %q", handle)
	}
	return nil
}
