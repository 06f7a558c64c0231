package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	pcfg "github.com/arpieb/glif-anc-grammar"
)

func TokenizeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runTokenize,
		UsageLine: "tokenize [-g grammar file] [text ...]",
		Short:     "tokenizes text against the grammar's terminal vocabulary",
		Long: `
tokenizes text against the grammar's terminal vocabulary

	$ ./glifgram tokenize "Hello, world!"
	$ cat corpus.txt | ./glifgram tokenize

Reads stdin line by line when no arguments are given. Prints one
space-joined token line per input line.
`,
		Flag: *flag.NewFlagSet("tokenize", flag.ExitOnError),
	}
	return cmd
}

func runTokenize(cmd *commander.Command, args []string) error {
	grammar, err := loadGrammar()
	if err != nil {
		return err
	}
	tokenizer := pcfg.NewTokenizer(pcfg.NewLookup(grammar))

	if len(args) > 0 {
		fmt.Println(strings.Join(tokenizer.Tokenize(strings.Join(args, " ")), " "))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(strings.Join(tokenizer.Tokenize(scanner.Text()), " "))
	}
	return errors.Wrap(scanner.Err(), "tokenize: reading stdin")
}
