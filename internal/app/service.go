package app

import (
	"context"

	"job-board/internal/core"
)

// ApplicationService is the single interface the HTTP adapter calls. It
// validates request payloads, owns password hashing, and delegates storage
// work to the core entity services. Implementations contain no HTTP types
// and no response formatting.
type ApplicationService interface {
	// ListCompanies returns company summaries matching the filter.
	ListCompanies(ctx context.Context, f core.CompanyFilter) ([]core.CompanySummary, error)

	// GetCompany returns one company with its jobs, newest first.
	GetCompany(ctx context.Context, handle string) (*core.CompanyDetail, error)

	// CreateCompany validates and inserts a new company.
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (*core.Company, error)

	// UpdateCompany applies a partial update keyed by handle.
	UpdateCompany(ctx context.Context, handle string, req UpdateCompanyRequest) (*core.Company, error)

	// DeleteCompany removes a company.
	DeleteCompany(ctx context.Context, handle string) error

	// ListJobs returns job summaries matching the filter, newest first.
	ListJobs(ctx context.Context, f core.JobFilter) ([]core.JobSummary, error)

	// GetJob returns one job by id.
	GetJob(ctx context.Context, id int) (*core.Job, error)

	// CreateJob validates and inserts a new job.
	CreateJob(ctx context.Context, req CreateJobRequest) (*core.Job, error)

	// UpdateJob applies a partial update keyed by id.
	UpdateJob(ctx context.Context, id int, req UpdateJobRequest) (*core.Job, error)

	// DeleteJob removes a job.
	DeleteJob(ctx context.Context, id int) error

	// RegisterUser validates the payload, hashes the password, inserts the
	// user and returns a session for token issuance.
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*UserSession, error)

	// AuthenticateUser verifies credentials and returns a session on
	// success. Unknown username and wrong password are indistinguishable.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)

	// ListUsers returns all users without password material.
	ListUsers(ctx context.Context) ([]core.UserSummary, error)

	// GetUser returns one user by username.
	GetUser(ctx context.Context, username string) (*core.UserSummary, error)

	// UpdateUser applies a partial update keyed by username, hashing a
	// replacement password when one is supplied.
	UpdateUser(ctx context.Context, username string, req UpdateUserRequest) (*core.UserSummary, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, username string) error
}
