package filter

import (
	"strings"

	"github.com/shibukawa/filterlang/tokenizer"
	"github.com/shibukawa/filterlang/typeindex"
)

// segment is one dotted name in an identifier chain, with the token it came
// from for error reporting.
type segment struct {
	name  string
	token tokenizer.Token
}

// resolveChain maps a dotted identifier chain to either a property access
// chain on the predicate parameter or an enum constant. Both strategies run
// unconditionally and their results are merged: zero candidates is an
// unresolved identifier, more than one is ambiguous. The language does not
// rank candidates; name collisions in the reachable type graph are the rule
// author's problem to avoid.
func (p *parser) resolveChain(segments []segment) (operand, error) {
	candidates := make([]operand, 0, 2)

	property, miss, ok := p.resolveProperty(segments)
	if ok {
		candidates = append(candidates, property)
	}

	// Enum constants are always a type name followed by a member name.
	if len(segments) == 2 {
		for _, enum := range p.index.EnumsNamed(segments[0].name) {
			if value, found := enum.Members[segments[1].name]; found {
				candidates = append(candidates, &constExpr{typ: enum.Type, val: value})
			}
		}
	}

	switch len(candidates) {
	case 0:
		return nil, &SyntaxError{
			Kind:     ErrUnresolvedIdentifier,
			Position: segments[miss].token.Position,
			Ident:    dotted(segments),
		}
	case 1:
		return candidates[0], nil
	default:
		return nil, &SyntaxError{
			Kind:     ErrAmbiguousIdentifier,
			Position: segments[0].token.Position,
			Ident:    dotted(segments),
		}
	}
}

// resolveProperty walks the chain from the parameter type, one readable
// member per segment. A segment that names no member is a plain "no match";
// miss reports which segment failed so unresolved-identifier errors can point
// at it.
func (p *parser) resolveProperty(segments []segment) (property operand, miss int, ok bool) {
	current := p.index.Target()
	path := make([]typeindex.Member, 0, len(segments))

	for i, seg := range segments {
		member, found := findMember(p.index.Members(current), seg.name)
		if !found {
			return nil, i, false
		}

		path = append(path, member)
		current = member.Type
	}

	return &propertyExpr{path: path, typ: current}, 0, true
}

func findMember(members []typeindex.Member, name string) (typeindex.Member, bool) {
	for _, member := range members {
		if member.Name == name {
			return member, true
		}
	}

	return typeindex.Member{}, false
}

func dotted(segments []segment) string {
	names := make([]string, 0, len(segments))
	for _, seg := range segments {
		names = append(names, seg.name)
	}

	return strings.Join(names, ".")
}
