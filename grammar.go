package pcfg

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// TerminalEntry is one lexicon production: Symbol -> 'Word'. A surface word
// keeps every tag the corpus assigned it, so the same word can carry several
// entries (part-of-speech ambiguity).
type TerminalEntry struct {
	Symbol string
	Word   string
}

// BinaryRule is one parent alternative for a fixed (left, right) child pair.
type BinaryRule struct {
	Parent      string
	Probability float64
}

// Grammar is the in-memory index built from a CNF grammar export. It is
// write-once: after Build returns, nothing touches either map again, so
// lookups are safe from any number of goroutines without locking.
type Grammar struct {
	// lexicon maps a surface word to every terminal production for it.
	lexicon map[string][]TerminalEntry

	// rules maps a (left, right) child pair to every parent alternative,
	// keyed first by the left child then by the right child.
	rules map[string]map[string][]BinaryRule

	ruleGroups  int
	ruleEntries int
}

// Build streams grammar lines from r and folds each recognized line into the
// index, one line at a time. Unrecognized lines are dropped without error:
// the export contains section headers and unary productions the index has no
// use for, and a single malformed row must never abort the whole load.
//
// Within one key the entries sit in reverse file order: the fold prepends.
// The ordering is an accident of accumulation, not a probability ranking,
// and callers must not treat it as one.
func Build(r io.Reader) (*Grammar, error) {
	g := &Grammar{
		lexicon: map[string][]TerminalEntry{},
		rules:   map[string]map[string][]BinaryRule{},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		g.add(ClassifyLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Build: reading grammar stream")
	}
	return g, nil
}

// add folds one classified line into the index. LineUnknown is a no-op.
func (g *Grammar) add(line GrammarLine) {
	switch line.Kind {
	case LineLexicon:
		entry := TerminalEntry{Symbol: line.Symbol, Word: line.Word}
		g.lexicon[line.Word] = append([]TerminalEntry{entry}, g.lexicon[line.Word]...)
	case LineRule:
		if g.rules[line.Left] == nil {
			g.rules[line.Left] = map[string][]BinaryRule{}
		}
		if g.rules[line.Left][line.Right] == nil {
			g.ruleGroups++
		}
		rule := BinaryRule{Parent: line.Symbol, Probability: line.Probability}
		g.rules[line.Left][line.Right] = append([]BinaryRule{rule}, g.rules[line.Left][line.Right]...)
		g.ruleEntries++
	}
}

// LoadFile builds a Grammar from the export file at path. A missing or
// unreadable file is fatal to the caller: the index cannot operate without
// its grammar, so the error propagates instead of yielding an empty index.
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadFile: open %s", path)
	}
	defer f.Close()

	g, err := Build(f)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadFile: %s", path)
	}
	return g, nil
}

// Stats holds the load diagnostics reported at startup.
type Stats struct {
	// Terminals is the number of distinct surface words in the lexicon.
	Terminals int

	// RuleGroups is the number of distinct (left, right) child pairs.
	RuleGroups int

	// RuleEntries is the total number of binary productions, counting every
	// parent alternative within a group.
	RuleEntries int

	// AmbiguousWords is the number of surface words with more than one tag.
	AmbiguousWords int
}

// Stats summarizes the built index for startup reporting.
func (g *Grammar) Stats() Stats {
	ambiguous := 0
	for _, entries := range g.lexicon {
		if len(entries) > 1 {
			ambiguous++
		}
	}
	return Stats{
		Terminals:      len(g.lexicon),
		RuleGroups:     g.ruleGroups,
		RuleEntries:    g.ruleEntries,
		AmbiguousWords: ambiguous,
	}
}
