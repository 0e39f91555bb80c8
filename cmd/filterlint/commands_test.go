package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCheckExpression(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"valid comparison", "Msg.Tag == 10", false},
		{"valid and", "Msg.Tag == 10 && Client.ID == 0", false},
		{"bad lexeme", "Msg.Tag = 10", true},
		{"no comparison", "Msg.Tag", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkExpression(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLintCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	content := `
rules:
  - name: ok
    expression: Msg.Tag == 10
  - name: broken
    expression: Msg.Tag ==
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := &LintCmd{File: path}
	err := cmd.Run(&Context{Quiet: true})
	assert.IsError(t, err, ErrLintFailed)
}

func TestLintCmdAllValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	content := `
rules:
  - name: ok
    expression: Msg.Tag == 10
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := &LintCmd{File: path}
	assert.NoError(t, cmd.Run(&Context{Quiet: true}))
}
