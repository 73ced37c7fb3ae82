package app

import (
	"context"
	"fmt"

	"job-board/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// UserSession is the authenticated identity handed to the HTTP adapter for
// token issuance. It never carries password material.
type UserSession struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type appService struct {
	companies  core.CompanyService
	jobs       core.JobService
	users      core.UserService
	bcryptCost int
}

// NewAppService wires the entity services into one ApplicationService.
// bcryptCost below bcrypt.MinCost falls back to DefaultCost.
func NewAppService(pool *pgxpool.Pool, bcryptCost int) ApplicationService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &appService{
		companies:  core.NewCompanyService(pool),
		jobs:       core.NewJobService(pool),
		users:      core.NewUserService(pool),
		bcryptCost: bcryptCost,
	}
}

// ─── Companies ───────────────────────────────────────────────────────────────

func (s *appService) ListCompanies(ctx context.Context, f core.CompanyFilter) ([]core.CompanySummary, error) {
	return s.companies.List(ctx, f)
}

func (s *appService) GetCompany(ctx context.Context, handle string) (*core.CompanyDetail, error) {
	return s.companies.Get(ctx, handle)
}

func (s *appService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*core.Company, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return s.companies.Create(ctx, core.CompanyInput{
		Handle:       req.Handle,
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
	})
}

func (s *appService) UpdateCompany(ctx context.Context, handle string, req UpdateCompanyRequest) (*core.Company, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	return s.companies.Update(ctx, handle, core.CompanyUpdate{
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
	})
}

func (s *appService) DeleteCompany(ctx context.Context, handle string) error {
	return s.companies.Delete(ctx, handle)
}

// ─── Jobs ────────────────────────────────────────────────────────────────────

func (s *appService) ListJobs(ctx context.Context, f core.JobFilter) ([]core.JobSummary, error) {
	return s.jobs.List(ctx, f)
}

func (s *appService) GetJob(ctx context.Context, id int) (*core.Job, error) {
	return s.jobs.Get(ctx, id)
}

func (s *appService) CreateJob(ctx context.Context, req CreateJobRequest) (*core.Job, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	if err := validateEquity(req.Equity); err != nil {
		return nil, err
	}
	return s.jobs.Create(ctx, core.JobInput{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
}

func (s *appService) UpdateJob(ctx context.Context, id int, req UpdateJobRequest) (*core.Job, error) {
	if err := validateEquity(req.Equity); err != nil {
		return nil, err
	}
	return s.jobs.Update(ctx, id, core.JobUpdate{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
}

func (s *appService) DeleteJob(ctx context.Context, id int) error {
	return s.jobs.Delete(ctx, id)
}

// validateEquity rejects equity outside [0, 1]. Nil means "not supplied".
func validateEquity(equity *decimal.Decimal) error {
	if equity == nil {
		return nil
	}
	if equity.IsNegative() || equity.GreaterThan(decimal.NewFromInt(1)) {
		return core.NewValidation("equity must be between 0 and 1 inclusive")
	}
	return nil
}

// ─── Users & auth ────────────────────────────────────────────────────────────

func (s *appService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*UserSession, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, core.UserInput{
		Username:  req.Username,
		Password:  string(digest),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &UserSession{Username: u.Username, IsAdmin: u.IsAdmin}, nil
}

func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	creds, err := s.users.GetCredentials(ctx, username)
	if err != nil {
		// Collapse "no such user" into the generic credential failure so the
		// response cannot be used to probe for usernames.
		return nil, core.NewValidation("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, core.NewValidation("Invalid username or password")
	}
	return &UserSession{Username: creds.Username, IsAdmin: creds.IsAdmin}, nil
}

func (s *appService) ListUsers(ctx context.Context) ([]core.UserSummary, error) {
	return s.users.List(ctx)
}

func (s *appService) GetUser(ctx context.Context, username string) (*core.UserSummary, error) {
	return s.users.Get(ctx, username)
}

func (s *appService) UpdateUser(ctx context.Context, username string, req UpdateUserRequest) (*core.UserSummary, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	update := core.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
	}
	if req.Password != nil {
		digest, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(digest)
		update.Password = &hashed
	}
	return s.users.Update(ctx, username, update)
}

func (s *appService) DeleteUser(ctx context.Context, username string) error {
	return s.users.Delete(ctx, username)
}
