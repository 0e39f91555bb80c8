package filterlang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadRuleSet(t *testing.T) {
	path := writeRuleFile(t, `
rules:
  - id: 3b9e4a60-1f6e-4f52-a3b2-52e725b7f001
    name: reliable-only
    description: keep reliable messages
    expression: Msg.Mode == SendMode.Reliable
  - name: local-client
    expression: Client.ID == 0
`)

	ruleSet, err := LoadRuleSet(path)
	require.NoError(t, err)
	require.Len(t, ruleSet.Rules, 2)

	assert.Equal(t, "3b9e4a60-1f6e-4f52-a3b2-52e725b7f001", ruleSet.Rules[0].ID)
	assert.Equal(t, "reliable-only", ruleSet.Rules[0].Name)
	assert.Equal(t, "Msg.Mode == SendMode.Reliable", ruleSet.Rules[0].Expression)

	// Rules without an explicit ID get a generated one.
	assert.NotEmpty(t, ruleSet.Rules[1].ID)
}

func TestLoadRuleSetExpandsEnvVars(t *testing.T) {
	t.Setenv("MAX_TAG", "10")

	path := writeRuleFile(t, `
rules:
  - name: tag-limit
    expression: Msg.Tag <= ${MAX_TAG}
`)

	ruleSet, err := LoadRuleSet(path)
	require.NoError(t, err)

	assert.Equal(t, "Msg.Tag <= 10", ruleSet.Rules[0].Expression)
}

func TestLoadRuleSetValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no rules",
			content: "rules: []\n",
			wantErr: ErrEmptyRuleSet,
		},
		{
			name: "missing name",
			content: `
rules:
  - expression: Msg.Tag == 1
`,
			wantErr: ErrEmptyRuleName,
		},
		{
			name: "duplicate name",
			content: `
rules:
  - name: a
    expression: Msg.Tag == 1
  - name: a
    expression: Msg.Tag == 2
`,
			wantErr: ErrDuplicateRuleName,
		},
		{
			name: "missing expression",
			content: `
rules:
  - name: a
`,
			wantErr: ErrEmptyExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRuleSet(writeRuleFile(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrRuleSetValidation)
		})
	}
}

func TestLoadRuleSetRejectsUnknownFields(t *testing.T) {
	path := writeRuleFile(t, `
rules:
  - name: a
    expression: Msg.Tag == 1
    severity: high
`)

	_, err := LoadRuleSet(path)
	assert.Error(t, err)
}

func TestLoadRuleSetMissingFile(t *testing.T) {
	_, err := LoadRuleSet(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
