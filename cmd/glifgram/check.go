package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
)

func CheckCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runCheck,
		UsageLine: "check [-g grammar file] [-t tolerance]",
		Short:     "checks per-parent probability mass of the binary rules",
		Long: `
checks per-parent probability mass of the binary rules

	$ ./glifgram check -g anc-masc-ptb.cnf -t 0.05

Parents that also produce terminals keep part of their mass in the lexicon
section, so expect some slack on mixed parents.
`,
		Flag: *flag.NewFlagSet("check", flag.ExitOnError),
	}
	cmd.Flag.Float64Var(&tolerance, "t", config.MassTolerance, "allowed deviation of per-parent mass from 1.0")
	return cmd
}

func runCheck(cmd *commander.Command, args []string) error {
	grammar, err := loadGrammar()
	if err != nil {
		return err
	}

	reports := grammar.CheckMass(tolerance)
	for _, report := range reports {
		fmt.Printf("%s\tmass %.6f\n", report.Parent, report.Mass)
	}
	if len(reports) > 0 {
		return errors.Errorf("check: %d parent(s) outside tolerance %g", len(reports), tolerance)
	}
	fmt.Println("ok")
	return nil
}
