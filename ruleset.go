// Package filterlang loads filter rule definitions for the filter expression
// compiler. Rules are authored in YAML files; each rule carries a filter
// expression compiled separately by the filter package against the record
// type it applies to.
package filterlang

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Rule is one named filter expression in a rule set.
type Rule struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Expression  string `yaml:"expression"`
}

// RuleSet is the parsed content of one rule file.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRuleSet loads and validates a rule file. `.env` files are loaded
// first and `${VAR}`/`$VAR` references inside expressions are expanded, so
// thresholds can come from the environment. Rules without an explicit ID are
// assigned a generated one.
func LoadRuleSet(path string) (*RuleSet, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	// Strict mode rejects unknown fields, so typos in rule files surface
	// as load errors instead of silently ignored settings.
	var ruleSet RuleSet

	err = yaml.UnmarshalWithOptions(data, &ruleSet, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}

	if err := validateRuleSet(&ruleSet); err != nil {
		return nil, err
	}

	for i := range ruleSet.Rules {
		if ruleSet.Rules[i].ID == "" {
			ruleSet.Rules[i].ID = uuid.NewString()
		}

		ruleSet.Rules[i].Expression = expandEnvVars(ruleSet.Rules[i].Expression)
	}

	return &ruleSet, nil
}

func validateRuleSet(ruleSet *RuleSet) error {
	if len(ruleSet.Rules) == 0 {
		return fmt.Errorf("%w: %w", ErrRuleSetValidation, ErrEmptyRuleSet)
	}

	seen := make(map[string]bool, len(ruleSet.Rules))

	for _, rule := range ruleSet.Rules {
		if rule.Name == "" {
			return fmt.Errorf("%w: %w", ErrRuleSetValidation, ErrEmptyRuleName)
		}

		if seen[rule.Name] {
			return fmt.Errorf("%w: %w: '%s'", ErrRuleSetValidation, ErrDuplicateRuleName, rule.Name)
		}

		seen[rule.Name] = true

		if rule.Expression == "" {
			return fmt.Errorf("%w: %w: rule '%s'", ErrRuleSetValidation, ErrEmptyExpression, rule.Name)
		}
	}

	return nil
}

// loadEnvFiles loads a .env file from the current directory if one exists.
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvFileLoad, err)
	}

	return nil
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR.
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}
