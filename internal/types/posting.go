// Package types provides type definitions for structured data used throughout the jobshield system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents a job posting submitted for fraud analysis.
// JobText is the only required field; the structured fields refine the
// recruiter and salary signals when present.
type AnalyzeRequest struct {
	JobText        string `json:"job_text" validate:"required,min=30"`
	CompanyName    string `json:"company_name,omitempty"`
	RecruiterEmail string `json:"recruiter_email,omitempty" validate:"omitempty,email"`
	ContactMethod  string `json:"contact_method,omitempty"`
	ProfileURL     string `json:"profile_url,omitempty"`

	// OfferedSalary overrides salary extraction from the text when set
	// (thousands per year, matching the benchmark bands).
	OfferedSalary *float64 `json:"offered_salary,omitempty"`

	// CompanyConfidence is supplied by an external verification collaborator
	// (0-100). Nil means unverified and is treated as 50.
	CompanyConfidence *float64 `json:"company_confidence,omitempty" validate:"omitempty,min=0,max=100"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
