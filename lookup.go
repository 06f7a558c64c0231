package pcfg

// Constituent is a grammar symbol plus whatever payload a caller wants
// carried through a rule lookup, typically the span or chart cell a parser
// attached to the symbol. Rule matching reads only Symbol; Value passes
// through untouched.
type Constituent struct {
	Symbol string
	Value  interface{}
}

// RuleMatch pairs one parent alternative with the original constituents the
// pair was matched over, so a parser can recover its own payloads from the
// result without a side table.
type RuleMatch struct {
	Parent      string
	Left        Constituent
	Right       Constituent
	Probability float64
}

// Lookup answers terminal and binary-rule queries over one Grammar. The
// grammar is injected at construction so tests can run against small
// synthetic grammars instead of the full corpus export.
type Lookup struct {
	grammar *Grammar
}

// NewLookup creates a Lookup over g.
func NewLookup(g *Grammar) *Lookup {
	return &Lookup{grammar: g}
}

// Terminal returns every terminal production for word, or (nil, false) when
// the word is not in the lexicon. A hit is never an empty slice.
func (l *Lookup) Terminal(word string) ([]TerminalEntry, bool) {
	entries, ok := l.grammar.lexicon[word]
	if !ok {
		return nil, false
	}
	return entries, true
}

// Rule returns every parent alternative for the exact child pair
// (left.Symbol, right.Symbol), or (nil, false) when no rule derives the
// pair. There is no partial or wildcard matching.
func (l *Lookup) Rule(left, right Constituent) ([]RuleMatch, bool) {
	group, ok := l.grammar.rules[left.Symbol][right.Symbol]
	if !ok {
		return nil, false
	}

	matches := make([]RuleMatch, 0, len(group))
	for _, rule := range group {
		matches = append(matches, RuleMatch{
			Parent:      rule.Parent,
			Left:        left,
			Right:       right,
			Probability: rule.Probability,
		})
	}
	return matches, true
}
