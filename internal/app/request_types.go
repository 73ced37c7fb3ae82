package app

import (
	"github.com/shopspring/decimal"
)

// CreateCompanyRequest is the payload for company creation. The JSON Schema
// served at /schemas/company is reflected from this struct.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,max=60" jsonschema_description:"Unique human-readable company identifier"`
	Name         string  `json:"name" validate:"required" jsonschema_description:"Company display name"`
	NumEmployees *int    `json:"num_employees" validate:"omitempty,min=0" jsonschema_description:"Head count, zero or more"`
	Description  *string `json:"description" jsonschema_description:"Free-text company description"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url" jsonschema_description:"URL of the company logo"`
}

// UpdateCompanyRequest is the sparse payload for company updates. Absent
// fields leave their columns untouched.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	NumEmployees *int    `json:"num_employees" validate:"omitempty,min=0"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
}

// CreateJobRequest is the payload for job creation.
type CreateJobRequest struct {
	Title         string           `json:"title" validate:"required" jsonschema_description:"Job title"`
	Salary        *decimal.Decimal `json:"salary" jsonschema:"type=number" jsonschema_description:"Annual salary"`
	Equity        *decimal.Decimal `json:"equity" jsonschema:"type=number" jsonschema_description:"Equity share between 0 and 1"`
	CompanyHandle string           `json:"company_handle" validate:"required" jsonschema_description:"Handle of the hiring company"`
}

// UpdateJobRequest is the sparse payload for job updates.
type UpdateJobRequest struct {
	Title         *string          `json:"title"`
	Salary        *decimal.Decimal `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
	CompanyHandle *string          `json:"company_handle"`
}

// RegisterUserRequest is the payload for user registration. Password is the
// only place plaintext appears; it is hashed before leaving this package.
type RegisterUserRequest struct {
	Username  string  `json:"username" validate:"required,max=60" jsonschema_description:"Unique username"`
	Password  string  `json:"password" validate:"required,min=5" jsonschema_description:"Plaintext password, stored only as a hash"`
	FirstName string  `json:"first_name" validate:"required" jsonschema_description:"Given name"`
	LastName  string  `json:"last_name" validate:"required" jsonschema_description:"Family name"`
	Email     string  `json:"email" validate:"required,email" jsonschema_description:"Contact email"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url" jsonschema_description:"URL of a profile photo"`
	IsAdmin   bool    `json:"is_admin" jsonschema_description:"Whether the user has administrative rights"`
}

// UpdateUserRequest is the sparse payload for self-service user updates.
// There is no is_admin field here on purpose.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url"`
	Password  *string `json:"password" validate:"omitempty,min=5"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
