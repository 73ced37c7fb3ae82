package core

import (
	"github.com/shopspring/decimal"
)

// Company is a row in the companies table. Handle is the primary key.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	NumEmployees *int    `json:"num_employees"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
}

// CompanySummary is the projection returned by company list queries.
type CompanySummary struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

// CompanyDetail is a company together with its jobs, newest first.
type CompanyDetail struct {
	Company
	Jobs []JobSummary `json:"jobs"`
}

// Job is the projection exposed for a single job. The surrogate id and the
// server-assigned date_posted exist only as the lookup key and the default
// sort column; neither is part of the response shape.
type Job struct {
	Title         string           `json:"title"`
	Salary        *decimal.Decimal `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
	CompanyHandle string           `json:"company_handle"`
}

// JobSummary is the projection returned by job list queries.
type JobSummary struct {
	Title         string `json:"title"`
	CompanyHandle string `json:"company_handle"`
}

// User is a row in the users table. Password holds the bcrypt digest and is
// never serialized.
type User struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"-"`
	PhotoURL  *string `json:"photo_url,omitempty"`
	IsAdmin   bool    `json:"is_admin"`
}

// UserSummary is the projection returned for user reads.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CompanyFilter is the criteria object for company list queries. Nil means
// the field is absent; a present empty search string still filters, and a
// present zero bound is a valid bound.
type CompanyFilter struct {
	Search       *string
	MinEmployees *int
	MaxEmployees *int
}

// Empty reports whether no filter field is active.
func (f CompanyFilter) Empty() bool {
	return f.Search == nil && f.MinEmployees == nil && f.MaxEmployees == nil
}

// JobFilter is the criteria object for job list queries.
type JobFilter struct {
	Search    *string
	MinSalary *decimal.Decimal
	MinEquity *decimal.Decimal
}

// Empty reports whether no filter field is active.
func (f JobFilter) Empty() bool {
	return f.Search == nil && f.MinSalary == nil && f.MinEquity == nil
}

// CompanyInput is a sparse company record for insertion.
type CompanyInput struct {
	Handle       string
	Name         string
	NumEmployees *int
	Description  *string
	LogoURL      *string
}

// fields returns the ordered (column, value) list for the insert builder.
// Optional columns are included only when supplied.
func (in CompanyInput) fields() []Field {
	fs := []Field{
		{Column: "handle", Value: in.Handle},
		{Column: "name", Value: in.Name},
	}
	if in.NumEmployees != nil {
		fs = append(fs, Field{Column: "num_employees", Value: *in.NumEmployees})
	}
	if in.Description != nil {
		fs = append(fs, Field{Column: "description", Value: *in.Description})
	}
	if in.LogoURL != nil {
		fs = append(fs, Field{Column: "logo_url", Value: *in.LogoURL})
	}
	return fs
}

// JobInput is a sparse job record for insertion.
type JobInput struct {
	Title         string
	Salary        *decimal.Decimal
	Equity        *decimal.Decimal
	CompanyHandle string
}

func (in JobInput) fields() []Field {
	fs := []Field{{Column: "title", Value: in.Title}}
	if in.Salary != nil {
		fs = append(fs, Field{Column: "salary", Value: *in.Salary})
	}
	if in.Equity != nil {
		fs = append(fs, Field{Column: "equity", Value: *in.Equity})
	}
	fs = append(fs, Field{Column: "company_handle", Value: in.CompanyHandle})
	return fs
}

// UserInput is a sparse user record for insertion. Password must already be
// a bcrypt digest; plaintext never reaches this layer.
type UserInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	PhotoURL  *string
	IsAdmin   bool
}

func (in UserInput) fields() []Field {
	fs := []Field{
		{Column: "username", Value: in.Username},
		{Column: "password", Value: in.Password},
		{Column: "first_name", Value: in.FirstName},
		{Column: "last_name", Value: in.LastName},
		{Column: "email", Value: in.Email},
	}
	if in.PhotoURL != nil {
		fs = append(fs, Field{Column: "photo_url", Value: *in.PhotoURL})
	}
	if in.IsAdmin {
		fs = append(fs, Field{Column: "is_admin", Value: in.IsAdmin})
	}
	return fs
}

// CompanyUpdate is a closed set of updatable company columns. The order in
// Fields fixes the placeholder order; it is part of the observable contract.
type CompanyUpdate struct {
	Name         *string
	NumEmployees *int
	Description  *string
	LogoURL      *string
}

// Fields returns the ordered (column, value) list of supplied columns.
func (u CompanyUpdate) Fields() []Field {
	var fs []Field
	if u.Name != nil {
		fs = append(fs, Field{Column: "name", Value: *u.Name})
	}
	if u.NumEmployees != nil {
		fs = append(fs, Field{Column: "num_employees", Value: *u.NumEmployees})
	}
	if u.Description != nil {
		fs = append(fs, Field{Column: "description", Value: *u.Description})
	}
	if u.LogoURL != nil {
		fs = append(fs, Field{Column: "logo_url", Value: *u.LogoURL})
	}
	return fs
}

// JobUpdate is a closed set of updatable job columns.
type JobUpdate struct {
	Title         *string
	Salary        *decimal.Decimal
	Equity        *decimal.Decimal
	CompanyHandle *string
}

// Fields returns the ordered (column, value) list of supplied columns.
func (u JobUpdate) Fields() []Field {
	var fs []Field
	if u.Title != nil {
		fs = append(fs, Field{Column: "title", Value: *u.Title})
	}
	if u.Salary != nil {
		fs = append(fs, Field{Column: "salary", Value: *u.Salary})
	}
	if u.Equity != nil {
		fs = append(fs, Field{Column: "equity", Value: *u.Equity})
	}
	if u.CompanyHandle != nil {
		fs = append(fs, Field{Column: "company_handle", Value: *u.CompanyHandle})
	}
	return fs
}

// UserUpdate is a closed set of updatable user columns. Password, when set,
// must already be a bcrypt digest. is_admin is deliberately absent: the
// self-service update path must not grant privileges.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	PhotoURL  *string
	Password  *string
}

// Fields returns the ordered (column, value) list of supplied columns.
func (u UserUpdate) Fields() []Field {
	var fs []Field
	if u.FirstName != nil {
		fs = append(fs, Field{Column: "first_name", Value: *u.FirstName})
	}
	if u.LastName != nil {
		fs = append(fs, Field{Column: "last_name", Value: *u.LastName})
	}
	if u.Email != nil {
		fs = append(fs, Field{Column: "email", Value: *u.Email})
	}
	if u.PhotoURL != nil {
		fs = append(fs, Field{Column: "photo_url", Value: *u.PhotoURL})
	}
	if u.Password != nil {
		fs = append(fs, Field{Column: "password", Value: *u.Password})
	}
	return fs
}
