// Package pipeline provides the high-level orchestration for job posting
// fraud analysis: it fans the posting out to the detection components,
// substitutes the documented neutral default for any component that cannot
// produce a signal, and fuses the results into a single risk report.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobshield/internal/classifier"
	"github.com/jonathan/jobshield/internal/fusion"
	"github.com/jonathan/jobshield/internal/recruiter"
	"github.com/jonathan/jobshield/internal/rules"
	"github.com/jonathan/jobshield/internal/salary"
	"github.com/jonathan/jobshield/internal/types"
)

// unknownCompanyConfidence is used when no external verification result
// accompanies the request.
const unknownCompanyConfidence = 50.0

// Analyzer wires the detection components together. It is safe for
// concurrent use: every component is read-only at analysis time, and the
// classifier swaps its trained state atomically.
type Analyzer struct {
	classifier *classifier.Classifier
	rules      *rules.Engine
	salary     *salary.Analyzer
	recruiter  *recruiter.Scorer
}

// NewAnalyzer creates an analyzer from its four detection components.
func NewAnalyzer(cls *classifier.Classifier, engine *rules.Engine, sal *salary.Analyzer, rec *recruiter.Scorer) *Analyzer {
	return &Analyzer{
		classifier: cls,
		rules:      engine,
		salary:     sal,
		recruiter:  rec,
	}
}

// Analyze runs the full detection pipeline for one posting. The components
// run concurrently; ordering between them is irrelevant because fusion only
// consumes their final values. An untrained classifier degrades to its
// neutral default, but a classifier state inconsistency aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalysisReport, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}

	var (
		mlResult        types.PredictionResult
		ruleResult      types.RuleResult
		salaryResult    types.SalaryAssessment
		recruiterResult types.RecruiterAssessment
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := a.classifier.Predict(req.JobText)
		if err != nil {
			return fmt.Errorf("classifier prediction failed: %w", err)
		}
		mlResult = result
		return nil
	})

	g.Go(func() error {
		ruleResult = a.rules.Check(req.JobText)
		return nil
	})

	g.Go(func() error {
		salaryResult = a.salary.Analyze(req.JobText, req.OfferedSalary)
		return nil
	})

	g.Go(func() error {
		recruiterResult = a.recruiter.Score(req.RecruiterEmail, req.ContactMethod, req.ProfileURL)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	signals := types.RiskSignals{
		MLProbability:       mlResult.Probability,
		RuleScore:           float64(ruleResult.Score),
		CompanyConfidence:   companyConfidence(req),
		SalaryAnomalyScore:  float64(salaryResult.AnomalyScore),
		RecruiterTrustScore: float64(recruiterResult.TrustScore),
	}

	risk := fusion.Fuse(signals)

	return &types.AnalysisReport{
		RiskScore:       risk.RiskScore,
		RiskTier:        risk.RiskTier,
		Recommendation:  risk.Recommendation,
		ComponentScores: risk.ComponentScores,
		MLResult:        mlResult,
		RuleResult:      ruleResult,
		SalaryAnalysis:  salaryResult,
		RecruiterScore:  recruiterResult,
		Explanations:    fusion.Explain(signals, risk),
		Evidence:        a.rules.Evidence(req.JobText, ruleResult.Triggered),
	}, nil
}

// companyConfidence resolves the externally supplied verification signal,
// treating absence as unknown.
func companyConfidence(req *types.AnalyzeRequest) float64 {
	if req.CompanyConfidence == nil {
		return unknownCompanyConfidence
	}
	return *req.CompanyConfidence
}
