package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	pcfg "github.com/arpieb/glif-anc-grammar"
)

func LookupCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runLookup,
		UsageLine: "lookup [-g grammar file] <word> | <left> <right>",
		Short:     "looks up a terminal word or a binary-rule child pair",
		Long: `
looks up a terminal word or a binary-rule child pair

	$ ./glifgram lookup exaggerates
	$ ./glifgram lookup DT NN

One argument queries the lexicon by surface word; two arguments query the
rule table by exact (left, right) symbol pair.
`,
		Flag: *flag.NewFlagSet("lookup", flag.ExitOnError),
	}
	return cmd
}

func runLookup(cmd *commander.Command, args []string) error {
	grammar, err := loadGrammar()
	if err != nil {
		return err
	}
	lookup := pcfg.NewLookup(grammar)

	switch len(args) {
	case 1:
		entries, ok := lookup.Terminal(args[0])
		if !ok {
			return errors.Errorf("lookup: no terminal '%s'", args[0])
		}
		for _, entry := range entries {
			fmt.Printf("%s -> '%s'\n", entry.Symbol, entry.Word)
		}
	case 2:
		matches, ok := lookup.Rule(
			pcfg.Constituent{Symbol: args[0]},
			pcfg.Constituent{Symbol: args[1]})
		if !ok {
			return errors.Errorf("lookup: no rule deriving (%s, %s)", args[0], args[1])
		}
		for _, match := range matches {
			fmt.Printf("%s -> %s %s %g\n", match.Parent, args[0], args[1], match.Probability)
		}
	default:
		return errors.New("lookup: expected <word> or <left> <right>")
	}
	return nil
}
