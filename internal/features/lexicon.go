// Package features turns posting text into the numeric feature vectors
// consumed by the classifier: a TF-IDF lexical vector fitted at training
// time, concatenated with a fixed-width set of engineered counters.
package features

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon category names. Order here fixes the engineered feature layout.
const (
	CategoryPayment           = "payment"
	CategoryUrgency           = "urgency"
	CategorySuspiciousContact = "suspicious_contact"
	CategoryNoInterview       = "no_interview"
	CategoryUnrealisticMoney  = "unrealistic_money"
	CategoryGeneric           = "generic_suspicious"
)

// Lexicon maps keyword categories to the phrases counted per category.
// It is a configurable table, not an exhaustive list.
type Lexicon map[string][]string

// DefaultLexicon returns the built-in keyword lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		CategoryPayment: {
			"fee", "payment", "deposit", "registration", "processing fee",
			"wallet", "send money", "pay", "charges", "refundable",
		},
		CategoryUrgency: {
			"urgent", "immediate", "asap", "24 hours", "today", "now",
			"hurry", "expires", "limited time",
		},
		CategorySuspiciousContact: {
			"whatsapp", "telegram", "dm only", "personal number",
			"text only", "no call",
		},
		CategoryNoInterview: {
			"no interview", "without interview", "selected without",
			"direct joining", "instant offer", "shortlisted",
		},
		CategoryUnrealisticMoney: {
			"earn lakhs", "guaranteed income", "easy money", "high salary",
			"no work", "earn daily", "guaranteed returns",
		},
		CategoryGeneric: {
			"congratulations", "lottery", "winner", "lucky",
			"work from home", "no experience",
		},
	}
}

// Categories returns the lexicon's category names in stable sorted order.
func (l Lexicon) Categories() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadLexicon reads a keyword lexicon from a YAML file. The file replaces
// the default lexicon entirely; categories map to phrase lists.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var lexicon Lexicon
	if err := yaml.Unmarshal(data, &lexicon); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon YAML: %w", err)
	}
	if len(lexicon) == 0 {
		return nil, fmt.Errorf("lexicon file %s defines no categories", path)
	}

	// Keyword matching runs against lowercased text, so phrases must be
	// lowercase too or they can never hit.
	for category, phrases := range lexicon {
		for i, phrase := range phrases {
			lexicon[category][i] = strings.ToLower(phrase)
		}
	}

	return lexicon, nil
}
