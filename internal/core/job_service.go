package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	jobListProjection = "SELECT title, company_handle FROM jobs"
	jobListOrder      = " ORDER BY date_posted DESC"
)

var maxEquity = decimal.NewFromInt(1)

// JobService provides CRUD operations over the jobs table.
type JobService interface {
	// List returns job summaries matching the filter, newest posting first.
	List(ctx context.Context, f JobFilter) ([]JobSummary, error)

	// Get returns one job by its surrogate id.
	Get(ctx context.Context, id int) (*Job, error)

	// Create inserts a new job; the company handle must reference an
	// existing company.
	Create(ctx context.Context, in JobInput) (*Job, error)

	// Update applies a partial update keyed by id.
	Update(ctx context.Context, id int, u JobUpdate) (*Job, error)

	// Delete removes a job; deleting a missing id is an error.
	Delete(ctx context.Context, id int) error
}

type jobService struct {
	pool *pgxpool.Pool
}

// NewJobService constructs a JobService backed by PostgreSQL.
func NewJobService(pool *pgxpool.Pool) JobService {
	return &jobService{pool: pool}
}

func (s *jobService) List(ctx context.Context, f JobFilter) ([]JobSummary, error) {
	query := jobListProjection + jobListOrder
	var values []any

	if !f.Empty() {
		var err error
		query, values, err = buildJobListQuery(f)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.pool.Query(ctx, query, values...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]JobSummary, 0)
	for rows.Next() {
		var j JobSummary
		if err := rows.Scan(&j.Title, &j.CompanyHandle); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *jobService) Get(ctx context.Context, id int) (*Job, error) {
	j := &Job{}
	err := s.pool.QueryRow(ctx, `
		SELECT title, salary, equity, company_handle
		FROM jobs
		WHERE id=$1`,
		id,
	).Scan(&j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No job found with id %d", id)
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return j, nil
}

func (s *jobService) Create(ctx context.Context, in JobInput) (*Job, error) {
	query, values, err := BuildInsert("jobs", in.fields(),
		"title, salary, equity, company_handle")
	if err != nil {
		return nil, err
	}

	j := &Job{}
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		return nil, translateConstraint(err,
			fmt.Sprintf("Job %q already exists", in.Title),
			fmt.Sprintf("No company exists corresponding to handle %q", in.CompanyHandle))
	}
	return j, nil
}

func (s *jobService) Update(ctx context.Context, id int, u JobUpdate) (*Job, error) {
	query, values, err := BuildPartialUpdate("jobs", u.Fields(), "id", id)
	if err != nil {
		return nil, err
	}

	j := &Job{}
	var rowID int
	var datePosted any
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&rowID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &datePosted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("No job found with id %d", id)
		}
		handle := ""
		if u.CompanyHandle != nil {
			handle = *u.CompanyHandle
		}
		return nil, translateConstraint(err,
			"job update conflicts with an existing row",
			fmt.Sprintf("No company exists corresponding to handle %q", handle))
	}
	return j, nil
}

func (s *jobService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NewNotFound("No job found with id %d", id)
	}
	return nil
}
