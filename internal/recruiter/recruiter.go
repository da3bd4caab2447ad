// Package recruiter scores recruiter contact metadata: email domain,
// contact channel and professional-profile presence combine additively into
// a clamped trust score with explainable factors.
package recruiter

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobshield/internal/types"
)

// baseScore is the starting trust score before adjustments.
const baseScore = 50

// Trust tier thresholds.
const (
	highTrustThreshold     = 70
	moderateTrustThreshold = 50
	lowTrustThreshold      = 30
)

// freeProviders are known free or disposable email providers.
var freeProviders = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"protonmail.com": true,
	"tempmail.com":   true,
	"rediffmail.com": true,
	"mail.com":       true,
}

// corporateMarkers are domain substrings recognized as corporate-style.
var corporateMarkers = []string{"company.com", "corp.com", "inc.com", "ltd.com"}

// Scorer computes recruiter trust assessments. Stateless per call.
type Scorer struct{}

// NewScorer creates a recruiter trust scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score combines the email, contact-method and profile adjustments into a
// clamped trust score. Missing inputs contribute no adjustment and record
// no factor; every non-zero adjustment is recorded as a factor.
func (s *Scorer) Score(email, contactMethod, profileURL string) types.RecruiterAssessment {
	score := baseScore
	var factors []types.TrustFactor

	if email != "" {
		delta, factor := scoreEmailDomain(email)
		score += delta
		factors = append(factors, factor)
	}
	if contactMethod != "" {
		delta, factor := scoreContactMethod(contactMethod)
		score += delta
		if factor != nil {
			factors = append(factors, *factor)
		}
	}
	if strings.TrimSpace(profileURL) != "" {
		delta, factor := scoreProfile(profileURL)
		score += delta
		factors = append(factors, factor)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.RecruiterAssessment{
		TrustScore: score,
		TrustLevel: trustLevel(score),
		Factors:    factors,
	}
}

// scoreEmailDomain adjusts for the credibility of the email's domain.
func scoreEmailDomain(email string) (int, types.TrustFactor) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return -10, types.TrustFactor{
			Factor: "Email Domain",
			Impact: types.ImpactNegative,
			Detail: "Invalid email format",
		}
	}
	domain := strings.ToLower(email[at+1:])

	if freeProviders[domain] {
		return -20, types.TrustFactor{
			Factor: "Email Domain",
			Impact: types.ImpactNegative,
			Detail: fmt.Sprintf("Using generic email provider (%s)", domain),
		}
	}
	for _, marker := range corporateMarkers {
		if strings.Contains(domain, marker) {
			return 20, types.TrustFactor{
				Factor: "Email Domain",
				Impact: types.ImpactPositive,
				Detail: "Using corporate email domain",
			}
		}
	}
	return 10, types.TrustFactor{
		Factor: "Email Domain",
		Impact: types.ImpactNeutral,
		Detail: fmt.Sprintf("Using custom domain (%s)", domain),
	}
}

// scoreContactMethod adjusts for the communication channel. Unrecognized
// methods contribute nothing and record no factor.
func scoreContactMethod(method string) (int, *types.TrustFactor) {
	lower := strings.ToLower(method)
	switch {
	case strings.Contains(lower, "whatsapp") || strings.Contains(lower, "telegram"):
		return -25, &types.TrustFactor{
			Factor: "Contact Method",
			Impact: types.ImpactNegative,
			Detail: "Using informal messaging apps only",
		}
	case strings.Contains(lower, "email"):
		return 15, &types.TrustFactor{
			Factor: "Contact Method",
			Impact: types.ImpactPositive,
			Detail: "Using professional email communication",
		}
	case strings.Contains(lower, "phone"):
		return 10, &types.TrustFactor{
			Factor: "Contact Method",
			Impact: types.ImpactNeutral,
			Detail: "Using phone communication",
		}
	default:
		return 0, nil
	}
}

// scoreProfile adjusts for the supplied professional-profile URL.
func scoreProfile(profileURL string) (int, types.TrustFactor) {
	trimmed := strings.TrimSpace(profileURL)
	if strings.Contains(strings.ToLower(trimmed), "linkedin.com/in/") {
		return 20, types.TrustFactor{
			Factor: "Professional Profile",
			Impact: types.ImpactPositive,
			Detail: "Professional profile provided",
		}
	}
	return -5, types.TrustFactor{
		Factor: "Professional Profile",
		Impact: types.ImpactNegative,
		Detail: "Invalid profile URL format",
	}
}

// trustLevel buckets a clamped score into the four ordinal trust tiers.
func trustLevel(score int) string {
	switch {
	case score >= highTrustThreshold:
		return types.TrustHigh
	case score >= moderateTrustThreshold:
		return types.TrustModerate
	case score >= lowTrustThreshold:
		return types.TrustLow
	default:
		return types.TrustNone
	}
}
