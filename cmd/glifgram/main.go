package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
)

var cmd *commander.Command

func init() {
	cmd = AllCommands()
}

func main() {
	err := cmd.Flag.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	err = cmd.Dispatch(cmd.Flag.Args())
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
