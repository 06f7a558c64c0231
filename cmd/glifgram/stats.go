package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func StatsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runStats,
		UsageLine: "stats [-g grammar file]",
		Short:     "prints index statistics for a grammar export",
		Long: `
prints index statistics for a grammar export

	$ ./glifgram stats -g anc-masc-ptb.cnf
`,
		Flag: *flag.NewFlagSet("stats", flag.ExitOnError),
	}
	return cmd
}

func runStats(cmd *commander.Command, args []string) error {
	grammar, err := loadGrammar()
	if err != nil {
		return err
	}

	stats := grammar.Stats()
	fmt.Println("terminals:      ", stats.Terminals)
	fmt.Println("ambiguous words:", stats.AmbiguousWords)
	fmt.Println("rule groups:    ", stats.RuleGroups)
	fmt.Println("rule entries:   ", stats.RuleEntries)
	return nil
}
