package pcfg

import (
	"regexp"
	"strconv"
)

// LineKind tags the classification of one raw grammar-file line.
type LineKind int

const (
	// LineUnknown marks a line that matches neither recognized format:
	// section headers, blanks, unary productions, malformed rows.
	LineUnknown LineKind = iota

	// LineLexicon marks a terminal production, like: VBZ -> 'exaggerates'
	LineLexicon

	// LineRule marks a binary production, like: NP -> DT NN 8.86147738551e-05
	LineRule
)

// GrammarLine is the typed form of one raw grammar-file line. Only the
// fields for the matching Kind are set.
type GrammarLine struct {
	Kind LineKind

	// Symbol is the left-hand side of the production: the terminal tag of a
	// lexicon line, or the parent non-terminal of a rule line.
	Symbol string

	// Word is the quoted surface form of a lexicon line.
	Word string

	// Left and Right are the child symbols of a rule line.
	Left  string
	Right string

	// Probability of a rule line.
	Probability float64
}

// The two line shapes the extractor emits. The quoted word of a lexicon
// line and the numeral tail of a rule line make the shapes mutually
// exclusive, so a line matches at most one of them.
var (
	lexiconPattern = regexp.MustCompile(`^\s*(\S+)\s*->\s*(?:'(.*)'|"(.*)")\s*$`)
	rulePattern    = regexp.MustCompile(`^\s*(\S+)\s*->\s*(\S+)\s+(\S+)\s+([0-9\-.e]+)\s*$`)
)

// ClassifyLine classifies a raw grammar line into its typed form. Lines
// matching neither shape come back as LineUnknown; so does a rule-shaped
// line whose probability field is not a parseable float, keeping a single
// bad row from ever failing a whole load.
func ClassifyLine(raw string) GrammarLine {
	if m := lexiconPattern.FindStringSubmatch(raw); m != nil {
		word := m[2]
		if word == "" && m[3] != "" {
			// The double-quoted variant captures in the third group
			word = m[3]
		}
		return GrammarLine{
			Kind:   LineLexicon,
			Symbol: m[1],
			Word:   word,
		}
	}

	if m := rulePattern.FindStringSubmatch(raw); m != nil {
		probability, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return GrammarLine{Kind: LineUnknown}
		}
		return GrammarLine{
			Kind:        LineRule,
			Symbol:      m[1],
			Left:        m[2],
			Right:       m[3],
			Probability: probability,
		}
	}

	return GrammarLine{Kind: LineUnknown}
}
