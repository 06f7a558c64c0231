package pcfg

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordPiece matches either a run of word characters or a single non-word
// character, so FindAllString splits a token on punctuation while keeping
// each punctuation character as its own piece.
var wordPiece = regexp.MustCompile(`\w+|[^\w]`)

// caseForms lists the candidate transforms of the fallback chain in
// precedence order: the raw token, then lowercase, then uppercase, then
// first-letter capitalization. First form with a lexicon hit wins.
var caseForms = []func(string) string{
	func(s string) string { return s },
	strings.ToLower,
	strings.ToUpper,
	capitalize,
}

// Tokenizer maps raw text onto a grammar's terminal vocabulary. It is a
// best-effort whitespace-and-punctuation splitter, not a real tokenizer:
// words the grammar has never seen pass through unchanged.
type Tokenizer struct {
	lookup *Lookup
}

// NewTokenizer creates a Tokenizer resolving against lookup.
func NewTokenizer(lookup *Lookup) *Tokenizer {
	return &Tokenizer{lookup: lookup}
}

// Tokenize splits text on whitespace and resolves each raw token against
// the lexicon through the fallback chain, in order. A token resolved by a
// case transform comes back in the grammar's casing, not the input's.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := []string{}
	for _, raw := range strings.Fields(text) {
		tokens = append(tokens, t.resolve(raw)...)
	}
	return tokens
}

// resolve runs the fallback chain on one whitespace-free token. When no
// case form hits the lexicon, the token is split on punctuation and each
// piece re-enters the chain. A split always yields at least two strictly
// shorter pieces, so the recursion depth is bounded by the token length;
// a punctuation-free token is the base case and passes through unchanged.
func (t *Tokenizer) resolve(token string) []string {
	for _, form := range caseForms {
		candidate := form(token)
		if _, ok := t.lookup.Terminal(candidate); ok {
			return []string{candidate}
		}
	}

	pieces := wordPiece.FindAllString(token, -1)
	if len(pieces) <= 1 {
		return []string{token}
	}

	tokens := []string{}
	for _, piece := range pieces {
		tokens = append(tokens, t.resolve(piece)...)
	}
	return tokens
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
