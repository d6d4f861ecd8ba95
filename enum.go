package formdoc

import (
	"fmt"
	"strings"
)

// EnumType is a closed set of string tokens. The empty string is a legal
// token when it is declared explicitly.
type EnumType struct {
	name    string
	tokens  []string
	ordinal map[string]int
}

func NewEnum(name string, tokens ...string) *EnumType {
	if name == "" {
		panic("enum name missing")
	}
	if len(tokens) == 0 {
		panic(fmt.Sprintf("enum %s has no tokens", name))
	}
	e := &EnumType{
		name:    name,
		tokens:  append([]string(nil), tokens...),
		ordinal: make(map[string]int, len(tokens)),
	}
	for i, tok := range tokens {
		if !isXMLText(tok) || collapseSpace(tok) != tok {
			panic(fmt.Sprintf("enum %s: token %q is not a valid xs:token", name, tok))
		}
		if _, dup := e.ordinal[tok]; dup {
			panic(fmt.Sprintf("enum %s: duplicate token %q", name, tok))
		}
		// ordinals start at 1 like the schema's INT_ constants
		e.ordinal[tok] = i + 1
	}
	return e
}

func (e *EnumType) Name() string   { return e.name }
func (e *EnumType) String() string { return e.name }

// Tokens returns a copy of the declared tokens in declaration order.
func (e *EnumType) Tokens() []string {
	return append([]string(nil), e.tokens...)
}

func (e *EnumType) Contains(tok string) bool {
	_, ok := e.ordinal[tok]
	return ok
}

// Ordinal returns the 1-based position of tok, or 0 if tok is not declared.
func (e *EnumType) Ordinal(tok string) int {
	return e.ordinal[tok]
}

func (e *EnumType) describe() string {
	quoted := make([]string, len(e.tokens))
	for i, tok := range e.tokens {
		quoted[i] = fmt.Sprintf("%q", tok)
	}
	return e.name + "{" + strings.Join(quoted, ", ") + "}"
}
