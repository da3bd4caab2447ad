package features

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	currencyPattern    = regexp.MustCompile(`(?i)(₹|\$|€|£|\brs\.?\b|\binr\b|\busd\b)`)
	phoneShapePattern  = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
	lpaPattern         = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:lpa|lakh|lakhs)\b`)
	salaryRangePattern = regexp.MustCompile(`(?i)\b\d+(?:,\d+)*\s*(?:k|thousand)?\s*(?:-|to)\s*\d+(?:,\d+)*\s*(?:k|thousand)?\b`)
)

// EngineeredFeatures is the fixed-width, hand-engineered feature record
// extracted from the raw (uncleaned) posting text.
type EngineeredFeatures struct {
	CategoryHits map[string]int `json:"category_hits"`

	TextLength     int     `json:"text_length"`
	WordCount      int     `json:"word_count"`
	MeanWordLength float64 `json:"mean_word_length"`

	ExclamationCount int     `json:"exclamation_count"`
	QuestionCount    int     `json:"question_count"`
	UppercaseRatio   float64 `json:"uppercase_ratio"`
	DigitRatio       float64 `json:"digit_ratio"`

	HasCurrency    bool `json:"has_currency"`
	HasPhoneShape  bool `json:"has_phone_shape"`
	HasLPAMention  bool `json:"has_lpa_mention"`
	HasSalaryRange bool `json:"has_salary_range"`
}

// ExtractEngineered computes engineered features from raw text using the
// given lexicon. Pure function of its inputs.
func ExtractEngineered(text string, lexicon Lexicon) EngineeredFeatures {
	lower := strings.ToLower(text)

	hits := make(map[string]int, len(lexicon))
	for category, phrases := range lexicon {
		count := 0
		for _, phrase := range phrases {
			count += strings.Count(lower, phrase)
		}
		hits[category] = count
	}

	words := strings.Fields(text)
	totalWordLen := 0
	for _, word := range words {
		totalWordLen += len(word)
	}
	meanWordLen := 0.0
	if len(words) > 0 {
		meanWordLen = float64(totalWordLen) / float64(len(words))
	}

	var letters, uppers, digits int
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			uppers++
			letters++
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	upperRatio := 0.0
	if letters > 0 {
		upperRatio = float64(uppers) / float64(letters)
	}
	digitRatio := 0.0
	if len(text) > 0 {
		digitRatio = float64(digits) / float64(len(text))
	}

	return EngineeredFeatures{
		CategoryHits:     hits,
		TextLength:       len(text),
		WordCount:        len(words),
		MeanWordLength:   meanWordLen,
		ExclamationCount: strings.Count(text, "!"),
		QuestionCount:    strings.Count(text, "?"),
		UppercaseRatio:   upperRatio,
		DigitRatio:       digitRatio,
		HasCurrency:      currencyPattern.MatchString(text),
		HasPhoneShape:    phoneShapePattern.MatchString(text),
		HasLPAMention:    lpaPattern.MatchString(text),
		HasSalaryRange:   salaryRangePattern.MatchString(text),
	}
}

// Vector flattens the record into a fixed-width numeric vector. Category
// hit counts come first, in the lexicon's stable category order, followed
// by the scalar features and boolean flags.
func (f EngineeredFeatures) Vector(categories []string) []float64 {
	vec := make([]float64, 0, len(categories)+11)
	for _, category := range categories {
		vec = append(vec, float64(f.CategoryHits[category]))
	}
	vec = append(vec,
		float64(f.TextLength),
		float64(f.WordCount),
		f.MeanWordLength,
		float64(f.ExclamationCount),
		float64(f.QuestionCount),
		f.UppercaseRatio,
		f.DigitRatio,
		boolFeature(f.HasCurrency),
		boolFeature(f.HasPhoneShape),
		boolFeature(f.HasLPAMention),
		boolFeature(f.HasSalaryRange),
	)
	return vec
}

func boolFeature(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
