package features

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/jobshield/internal/textproc"
)

// ErrVectorizerNotFitted is returned when Transform is called before Fit.
// Callers must train or load a model first.
var ErrVectorizerNotFitted = errors.New("vectorizer has not been fitted")

// Default vectorizer parameters.
const (
	DefaultMaxFeatures = 1000
	DefaultMinNgram    = 1
	DefaultMaxNgram    = 3
)

// Vectorizer is a TF-IDF model over word n-grams with a capped vocabulary.
// It is fitted once during training and used read-only afterwards; it is
// never refit implicitly.
type Vectorizer struct {
	MaxFeatures int            `json:"max_features"`
	MinNgram    int            `json:"min_ngram"`
	MaxNgram    int            `json:"max_ngram"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
}

// NewVectorizer creates an unfitted vectorizer with default parameters.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		MaxFeatures: DefaultMaxFeatures,
		MinNgram:    DefaultMinNgram,
		MaxNgram:    DefaultMaxNgram,
	}
}

// Fitted reports whether the vectorizer has a fitted vocabulary.
func (v *Vectorizer) Fitted() bool {
	return len(v.Vocabulary) > 0
}

// Dim returns the fitted vocabulary size.
func (v *Vectorizer) Dim() int {
	return len(v.Vocabulary)
}

// ngrams produces the n-gram terms for a document.
func (v *Vectorizer) ngrams(text string) []string {
	tokens := textproc.Tokenize(textproc.CleanText(text))
	var terms []string
	for n := v.MinNgram; n <= v.MaxNgram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// Fit builds the vocabulary and IDF table from the corpus. The vocabulary
// keeps the MaxFeatures most frequent terms; ties break alphabetically so
// fitting is deterministic.
func (v *Vectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)
	for _, doc := range docs {
		terms := v.ngrams(doc)
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			totalFreq[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(totalFreq))
	for term := range totalFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalFreq[terms[i]] != totalFreq[terms[j]] {
			return totalFreq[terms[i]] > totalFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	// Index alphabetically within the retained vocabulary.
	sort.Strings(terms)

	numDocs := len(docs)
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1.
		v.IDF[i] = math.Log(float64(1+numDocs)/float64(1+docFreq[term])) + 1.0
	}
}

// Transform converts one document into an L2-normalized TF-IDF vector of
// the fitted dimensionality.
func (v *Vectorizer) Transform(doc string) ([]float64, error) {
	if !v.Fitted() {
		return nil, ErrVectorizerNotFitted
	}

	vec := make([]float64, len(v.Vocabulary))
	for _, term := range v.ngrams(doc) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	norm := 0.0
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}
