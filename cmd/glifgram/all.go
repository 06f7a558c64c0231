package main

import (
	"log"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	pcfg "github.com/arpieb/glif-anc-grammar"
)

// Config carries the environment defaults for every subcommand. Flags
// override it per invocation.
type Config struct {
	GrammarPath   string  `env:"GLIF_GRAMMAR" env-default:"anc-masc-ptb.cnf" env-description:"path to the CNF grammar export"`
	MassTolerance float64 `env:"GLIF_MASS_TOLERANCE" env-default:"0.05" env-description:"allowed per-parent probability mass deviation"`
}

var (
	config Config

	grammarFile string
	tolerance   float64
)

func AllCommands() *commander.Command {
	if err := cleanenv.ReadEnv(&config); err != nil {
		log.Println("Warning: reading environment:", err)
	}

	cmd := &commander.Command{
		UsageLine: "glifgram <command> [arguments]",
		Short:     "query a CNF treebank grammar export",
		Subcommands: []*commander.Command{
			StatsCmd(),
			CheckCmd(),
			TokenizeCmd(),
			LookupCmd(),
		},
		Flag: *flag.NewFlagSet("glifgram", flag.ExitOnError),
	}
	for _, sub := range cmd.Subcommands {
		sub.Flag.StringVar(&grammarFile, "g", config.GrammarPath, "CNF grammar export file")
	}
	return cmd
}

// loadGrammar loads the grammar file every subcommand starts from and logs
// the startup diagnostics.
func loadGrammar() (*pcfg.Grammar, error) {
	start := time.Now()
	grammar, err := pcfg.LoadFile(grammarFile)
	if err != nil {
		return nil, errors.Wrap(err, "loading grammar")
	}

	stats := grammar.Stats()
	log.Println("Loaded", grammarFile, "in", time.Since(start))
	log.Println("Terminals:\t", stats.Terminals)
	log.Println("Rule groups:\t", stats.RuleGroups)
	return grammar, nil
}
