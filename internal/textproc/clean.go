// Package textproc provides text cleaning and tokenization for the feature
// extraction pipeline.
package textproc

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+)`)
	phonePattern      = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText lowercases the text and strips URLs, phone-shaped substrings,
// email addresses and punctuation, collapsing runs of whitespace.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = phonePattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Tokenize splits cleaned text into tokens, dropping stopwords and tokens
// shorter than three characters.
func Tokenize(cleaned string) []string {
	if cleaned == "" {
		return nil
	}

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) <= 2 {
			continue
		}
		if stopwords[field] {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// Normalize runs the full preprocessing pipeline: clean, tokenize, rejoin.
func Normalize(text string) string {
	return strings.Join(Tokenize(CleanText(text)), " ")
}
