// Package rules implements the deterministic fraud pattern engine: a
// data-driven table of category phrases with severity weights, matched
// case-insensitively against posting text.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/jobshield/internal/types"
)

// highConfidenceThreshold is the unclamped severity sum at which a posting
// is flagged as a high-confidence scam.
const highConfidenceThreshold = 50

// maxScore caps the reported rule score.
const maxScore = 100

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// Rule is one category of fraud patterns sharing a severity weight.
type Rule struct {
	Category string   `yaml:"category"`
	Severity int      `yaml:"severity"`
	Patterns []string `yaml:"patterns"`
}

// Engine matches posting text against its rule table. Stateless per call;
// the table is fixed at construction.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the built-in rule table.
func NewEngine() *Engine {
	engine, err := newEngineFromYAML(defaultRulesYAML)
	if err != nil {
		// The embedded table is part of the build; failing to parse it is
		// a programming error.
		panic(fmt.Sprintf("invalid embedded rule table: %v", err))
	}
	return engine
}

// LoadEngine creates an engine from a YAML rule file, replacing the
// built-in table entirely.
func LoadEngine(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	engine, err := newEngineFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return engine, nil
}

func newEngineFromYAML(data []byte) (*Engine, error) {
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("rule table defines no rules")
	}
	for _, rule := range doc.Rules {
		if rule.Category == "" {
			return nil, fmt.Errorf("rule with empty category")
		}
		if rule.Severity <= 0 {
			return nil, fmt.Errorf("rule %s has non-positive severity %d", rule.Category, rule.Severity)
		}
		if len(rule.Patterns) == 0 {
			return nil, fmt.Errorf("rule %s has no patterns", rule.Category)
		}
	}
	// Matching lowercases the text, so patterns must be lowercase too or
	// they can never hit.
	for _, rule := range doc.Rules {
		for i, pattern := range rule.Patterns {
			rule.Patterns[i] = strings.ToLower(pattern)
		}
	}
	// Stable category order keeps match output deterministic regardless of
	// the table's file order.
	sort.SliceStable(doc.Rules, func(i, j int) bool {
		return doc.Rules[i].Category < doc.Rules[j].Category
	})
	return &Engine{rules: doc.Rules}, nil
}

// Rules returns a copy of the active rule table.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Check matches the text against every pattern of every rule. Each hit
// accumulates its category severity; repeated patterns across rules all
// count and are not deduplicated. The score is clamped to 100 while the
// high-confidence flag uses the unclamped sum.
func (e *Engine) Check(text string) types.RuleResult {
	lower := strings.ToLower(text)

	var triggered []types.RuleMatch
	score := 0
	for _, rule := range e.rules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(lower, pattern) {
				triggered = append(triggered, types.RuleMatch{
					Category: rule.Category,
					Pattern:  pattern,
					Severity: rule.Severity,
				})
				score += rule.Severity
			}
		}
	}

	clamped := score
	if clamped > maxScore {
		clamped = maxScore
	}
	return types.RuleResult{
		Triggered:          triggered,
		Score:              clamped,
		HighConfidenceScam: score >= highConfidenceThreshold,
	}
}

// Evidence re-scans the text for the literal matched phrases so they can
// be surfaced as quoted excerpts.
func (e *Engine) Evidence(text string, triggered []types.RuleMatch) []types.Evidence {
	lower := strings.ToLower(text)
	var evidence []types.Evidence
	for _, match := range triggered {
		if strings.Contains(lower, match.Pattern) {
			evidence = append(evidence, types.Evidence{
				Phrase:   match.Pattern,
				Category: match.Category,
				Severity: match.Severity,
			})
		}
	}
	return evidence
}
