package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/filterlang"
	"github.com/shibukawa/filterlang/filter"
	"github.com/shibukawa/filterlang/tokenizer"
)

// Sentinel errors
var (
	ErrLintFailed = errors.New("rule file contains invalid expressions")
)

// LintCmd represents the lint command
type LintCmd struct {
	File string `arg:"" help:"Rule file to check" type:"path"`
}

// Run executes the lint command. Expressions are checked against the grammar
// only; identifier resolution needs the record type, which is not known at
// lint time.
func (cmd *LintCmd) Run(ctx *Context) error {
	ruleSet, err := filterlang.LoadRuleSet(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to load rule file: %w", err)
	}

	failures := 0

	for _, rule := range ruleSet.Rules {
		if err := checkExpression(rule.Expression); err != nil {
			failures++

			if !ctx.Quiet {
				color.Red("✗ %s: %v", rule.Name, err)
			}

			continue
		}

		if ctx.Verbose {
			color.Green("✓ %s", rule.Name)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d failed", ErrLintFailed, failures, len(ruleSet.Rules))
	}

	if !ctx.Quiet {
		color.Green("All %d rules are valid", len(ruleSet.Rules))
	}

	return nil
}

func checkExpression(expression string) error {
	tokens, err := tokenizer.Tokenize(expression)
	if err != nil {
		return err
	}

	return filter.Validate(tokens)
}

// TokensCmd represents the tokens command
type TokensCmd struct {
	Expression string `arg:"" help:"Filter expression to tokenize"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	tokens, err := tokenizer.Tokenize(cmd.Expression)
	if err != nil {
		return err
	}

	for _, token := range tokens {
		fmt.Printf("%3d:%-3d %-14s %s\n", token.Position.Line, token.Position.Column, token.Type, token.Value)
	}

	return nil
}
