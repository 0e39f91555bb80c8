package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTypes []TokenType
		wantErr   error
	}{
		{
			name:      "property comparison",
			input:     "msg.Tag == 10",
			wantTypes: []TokenType{IDENT, DOT, IDENT, EQUAL, NUMBER, EOF},
		},
		{
			name:  "and expression",
			input: "msg.Tag == 10 && client.ID == 0",
			wantTypes: []TokenType{
				IDENT, DOT, IDENT, EQUAL, NUMBER, AND,
				IDENT, DOT, IDENT, EQUAL, NUMBER, EOF,
			},
		},
		{
			name:      "or expression",
			input:     "a < 1 || b > 2",
			wantTypes: []TokenType{IDENT, LESS_THAN, NUMBER, OR, IDENT, GREATER_THAN, NUMBER, EOF},
		},
		{
			name:      "all comparators",
			input:     "== != < > <= >=",
			wantTypes: []TokenType{EQUAL, NOT_EQUAL, LESS_THAN, GREATER_THAN, LESS_EQUAL, GREATER_EQUAL, EOF},
		},
		{
			name:      "string literals",
			input:     `name == "alice" || name == 'bob'`,
			wantTypes: []TokenType{IDENT, EQUAL, STRING, OR, IDENT, EQUAL, STRING, EOF},
		},
		{
			name:      "keyword literals",
			input:     "active == true && status == null",
			wantTypes: []TokenType{IDENT, EQUAL, BOOLEAN, AND, IDENT, EQUAL, NULL, EOF},
		},
		{
			name:      "negative number",
			input:     "offset >= -42",
			wantTypes: []TokenType{IDENT, GREATER_EQUAL, NUMBER, EOF},
		},
		{
			name:      "empty input",
			input:     "   ",
			wantTypes: []TokenType{EOF},
		},
		{
			name:    "single ampersand",
			input:   "a & b",
			wantErr: ErrUnexpectedOperator,
		},
		{
			name:    "single equal",
			input:   "a = b",
			wantErr: ErrUnexpectedOperator,
		},
		{
			name:    "unterminated string",
			input:   `name == "alice`,
			wantErr: ErrUnterminatedString,
		},
		{
			name:    "unexpected character",
			input:   "a == #",
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:    "dangling minus",
			input:   "a == -",
			wantErr: ErrUnexpectedCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if tt.wantErr != nil {
				assert.IsError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)

			actualTypes := make([]TokenType, 0, len(tokens))
			for _, token := range tokens {
				actualTypes = append(actualTypes, token.Type)
			}

			assert.Equal(t, tt.wantTypes, actualTypes)
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens, err := Tokenize(`client.ID != "5"`)
	assert.NoError(t, err)

	assert.Equal(t, "client", tokens[0].Value)
	assert.Equal(t, ".", tokens[1].Value)
	assert.Equal(t, "ID", tokens[2].Value)
	assert.Equal(t, "!=", tokens[3].Value)
	assert.Equal(t, "5", tokens[4].Value)
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("msg.Tag == 10")
	assert.NoError(t, err)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Position)
	assert.Equal(t, Position{Line: 1, Column: 4, Offset: 3}, tokens[1].Position)
	assert.Equal(t, Position{Line: 1, Column: 5, Offset: 4}, tokens[2].Position)
	assert.Equal(t, Position{Line: 1, Column: 9, Offset: 8}, tokens[3].Position)
	assert.Equal(t, Position{Line: 1, Column: 12, Offset: 11}, tokens[4].Position)
}

func TestTokenizeMultiline(t *testing.T) {
	tokens, err := Tokenize("a == 1 &&\nb == 2")
	assert.NoError(t, err)

	assert.Equal(t, IDENT, tokens[4].Type)
	assert.Equal(t, 2, tokens[4].Position.Line)
	assert.Equal(t, 1, tokens[4].Position.Column)
}
