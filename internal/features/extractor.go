package features

import "math"

// Extractor combines the lexical TF-IDF vectorizer with the engineered
// feature record into one concatenated vector per posting. The engineered
// block is standardized with statistics fitted over the training corpus so
// that raw counts do not dominate the normalized lexical weights.
type Extractor struct {
	Vectorizer *Vectorizer `json:"vectorizer"`
	Lexicon    Lexicon     `json:"lexicon"`

	// Standardization statistics for the engineered block, fitted by Fit.
	EngMean []float64 `json:"eng_mean,omitempty"`
	EngStd  []float64 `json:"eng_std,omitempty"`

	// categories caches the lexicon's stable category order.
	categories []string
}

// NewExtractor creates an unfitted extractor over the given lexicon.
func NewExtractor(lexicon Lexicon) *Extractor {
	return &Extractor{
		Vectorizer: NewVectorizer(),
		Lexicon:    lexicon,
		categories: lexicon.Categories(),
	}
}

// Fitted reports whether the underlying vectorizer has been fitted.
func (e *Extractor) Fitted() bool {
	return e.Vectorizer != nil && e.Vectorizer.Fitted()
}

// Fit fits the vectorizer and the engineered-block statistics over the
// full corpus.
func (e *Extractor) Fit(docs []string) {
	e.Vectorizer.Fit(docs)

	categories := e.Categories()
	width := len(categories) + 11
	e.EngMean = make([]float64, width)
	e.EngStd = make([]float64, width)

	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		rows[i] = ExtractEngineered(doc, e.Lexicon).Vector(categories)
		for j, x := range rows[i] {
			e.EngMean[j] += x
		}
	}
	if len(docs) == 0 {
		for j := range e.EngStd {
			e.EngStd[j] = 1.0
		}
		return
	}
	for j := range e.EngMean {
		e.EngMean[j] /= float64(len(docs))
	}
	for _, row := range rows {
		for j, x := range row {
			d := x - e.EngMean[j]
			e.EngStd[j] += d * d
		}
	}
	for j := range e.EngStd {
		e.EngStd[j] = math.Sqrt(e.EngStd[j] / float64(len(docs)))
		if e.EngStd[j] == 0 {
			e.EngStd[j] = 1.0
		}
	}
}

// Dim returns the total feature dimensionality: lexical terms plus the
// fixed-width engineered block.
func (e *Extractor) Dim() int {
	return e.Vectorizer.Dim() + len(e.Categories()) + 11
}

// Categories returns the lexicon category order used for the engineered block.
func (e *Extractor) Categories() []string {
	if e.categories == nil {
		e.categories = e.Lexicon.Categories()
	}
	return e.categories
}

// Vector returns the concatenated feature vector for one posting. Returns
// ErrVectorizerNotFitted when called before training or loading a model.
func (e *Extractor) Vector(text string) ([]float64, error) {
	lexical, err := e.Vectorizer.Transform(text)
	if err != nil {
		return nil, err
	}

	engineered := ExtractEngineered(text, e.Lexicon).Vector(e.Categories())
	for j, x := range engineered {
		if j < len(e.EngMean) {
			engineered[j] = (x - e.EngMean[j]) / e.EngStd[j]
		}
	}

	return append(lexical, engineered...), nil
}
