package pcfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrammar = `
TERMINALS
VBZ -> 'exaggerates'
DT -> 'the'
NN -> 'weather'
A -> 'x'
B -> 'x'
, -> ','

BINARIES
NP -> DT NN 8.86147738551e-05
S -> NP VP 0.25
VP -> DT NN 0.1
`

func buildTestGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := Build(strings.NewReader(testGrammar))
	require.NoError(t, err)
	return g
}

func TestBuildSkipsUnrecognizedLines(t *testing.T) {
	g := buildTestGrammar(t)

	// Section headers and blank lines contribute nothing
	stats := g.Stats()
	assert.Equal(t, 5, stats.Terminals, "distinct surface words")
	assert.Equal(t, 2, stats.RuleGroups, "distinct child pairs")
	assert.Equal(t, 3, stats.RuleEntries)
	assert.Equal(t, 1, stats.AmbiguousWords)
}

func TestBuildRetainsAmbiguousTerminals(t *testing.T) {
	g := buildTestGrammar(t)

	entries := g.lexicon["x"]
	require.Len(t, entries, 2)
	assert.Contains(t, entries, TerminalEntry{Symbol: "A", Word: "x"})
	assert.Contains(t, entries, TerminalEntry{Symbol: "B", Word: "x"})
}

func TestBuildPrependsWithinKey(t *testing.T) {
	// Same-key entries accumulate in reverse file order. The ordering is a
	// carried-over accumulation artifact and changing it would silently
	// reorder downstream tie-breaking, so it is pinned here.
	g, err := Build(strings.NewReader("A -> 'x'\nB -> 'x'\nC -> 'x'\n"))
	require.NoError(t, err)

	entries := g.lexicon["x"]
	require.Len(t, entries, 3)
	assert.Equal(t, "C", entries[0].Symbol)
	assert.Equal(t, "B", entries[1].Symbol)
	assert.Equal(t, "A", entries[2].Symbol)
}

func TestBuildCollapsesDuplicateWordsIntoOneKey(t *testing.T) {
	g, err := Build(strings.NewReader("A -> 'x'\nB -> 'x'\nC -> 'y'\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Stats().Terminals)
}

func TestBuildGroupsRuleParentsByChildPair(t *testing.T) {
	g, err := Build(strings.NewReader("NP -> DT NN 0.5\nQP -> DT NN 0.5\nS -> NP VP 1.0\n"))
	require.NoError(t, err)

	group := g.rules["DT"]["NN"]
	require.Len(t, group, 2)
	// Prepend order here too
	assert.Equal(t, "QP", group[0].Parent)
	assert.Equal(t, "NP", group[1].Parent)

	assert.Equal(t, 2, g.Stats().RuleGroups)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.cnf")
	require.Error(t, err)
}
