package filter

import "github.com/shibukawa/filterlang/tokenizer"

// cursor is the shared primitive all grammar rules use: bounded lookahead
// plus verified consumption over the token sequence. peek never mutates
// state; consume is the only place the position advances, so every rule can
// be tried speculatively before any token is committed.
type cursor struct {
	tokens []tokenizer.Token
	pos    int
}

// peek reports whether the token at pos + lookahead - 1 exists and matches
// kind. lookahead is 1-based: peek(kind, 1) inspects the current token.
func (c *cursor) peek(kind tokenizer.TokenType, lookahead int) bool {
	token, ok := c.at(lookahead)

	return ok && token.Type == kind
}

// at returns the token at the given 1-based lookahead without consuming it.
func (c *cursor) at(lookahead int) (tokenizer.Token, bool) {
	i := c.pos + lookahead - 1
	if i < 0 || i >= len(c.tokens) {
		return tokenizer.Token{}, false
	}

	return c.tokens[i], true
}

// consume verifies the current token matches kind, advances past it, and
// returns it. A mismatch fails with an unexpected-token syntax error carrying
// the offending position and the found/expected kinds.
func (c *cursor) consume(kind tokenizer.TokenType) (tokenizer.Token, error) {
	token, ok := c.at(1)
	if !ok {
		return tokenizer.Token{}, &SyntaxError{
			Kind:       ErrUnexpectedToken,
			Position:   c.endPosition(),
			TokenIndex: c.pos,
			Found:      tokenizer.EOF,
			Expected:   kind,
		}
	}

	if token.Type != kind {
		return tokenizer.Token{}, &SyntaxError{
			Kind:       ErrUnexpectedToken,
			Position:   token.Position,
			TokenIndex: c.pos,
			Found:      token.Type,
			Expected:   kind,
		}
	}

	c.pos++

	return token, nil
}

// endPosition approximates the position just past the last token, for errors
// reported at end of input.
func (c *cursor) endPosition() tokenizer.Position {
	if len(c.tokens) == 0 {
		return tokenizer.Position{Line: 1, Column: 1}
	}

	last := c.tokens[len(c.tokens)-1]

	return last.Position
}
