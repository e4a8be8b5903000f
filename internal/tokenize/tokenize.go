package tokenize

import (
	"regexp"
	"strings"
)

// InvalidInputError reports text the engine cannot analyze: empty input, or
// input with no alphabetic tokens after normalization.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// Sentence is one sentence in both display and metric form.
type Sentence struct {
	Display string   // original casing, whitespace collapsed
	Words   []string // lowercased word tokens
}

// Document is the tokenized form of one submitted text. It is built once per
// request and never mutated or shared afterward.
type Document struct {
	Sentences []Sentence
	Words     []string // every token in order, lowercased
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
var wordPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)
var anyLetter = regexp.MustCompile(`[a-zA-Z]`)

// Tokenize splits text into sentences and lowercased word tokens. A sentence
// ends at terminal punctuation followed by whitespace or end of input, so
// decimals like "3.5" stay inside one sentence. The same text always yields
// the same Document.
func Tokenize(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Reason: "text is empty"}
	}

	doc := &Document{}
	for _, raw := range sentenceBoundary.Split(text, -1) {
		display := strings.Join(strings.Fields(raw), " ")
		if display == "" {
			continue
		}
		words := wordPattern.FindAllString(strings.ToLower(display), -1)
		if len(words) == 0 {
			continue
		}
		doc.Sentences = append(doc.Sentences, Sentence{Display: display, Words: words})
		doc.Words = append(doc.Words, words...)
	}

	if !hasLetter(doc.Words) {
		return nil, &InvalidInputError{Reason: "no alphabetic tokens"}
	}
	return doc, nil
}

func hasLetter(words []string) bool {
	for _, w := range words {
		if anyLetter.MatchString(w) {
			return true
		}
	}
	return false
}
