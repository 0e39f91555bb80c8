package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Verbose bool
	Quiet   bool
}

// CLI represents the command line structure
var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose output"`
	Quiet   bool `short:"q" help:"Suppress non-error output"`

	Lint    LintCmd    `cmd:"" help:"Check the filter expressions in a rule file"`
	Tokens  TokensCmd  `cmd:"" help:"Dump the token stream of a filter expression"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("filterlint v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
