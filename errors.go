package filterlang

import "errors"

// Common errors used throughout the filterlang package
var (
	// ErrRuleSetValidation is returned when a rule set fails validation.
	// Rule set errors
	ErrRuleSetValidation = errors.New("rule set validation failed")
	// ErrEmptyRuleSet indicates a rule file contained no rules.
	ErrEmptyRuleSet = errors.New("rule set contains no rules")
	// ErrEmptyRuleName indicates a rule was declared without a name.
	ErrEmptyRuleName = errors.New("rule name is required")
	// ErrDuplicateRuleName indicates two rules share the same name.
	ErrDuplicateRuleName = errors.New("duplicate rule name")
	// ErrEmptyExpression indicates a rule was declared without an expression.
	ErrEmptyExpression = errors.New("rule expression is required")

	// ErrEnvFileLoad indicates a .env file exists but could not be loaded.
	// Environment errors
	ErrEnvFileLoad = errors.New("failed to load .env file")
)
