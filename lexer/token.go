// Package lexer turns notepad-calculator source text into a token stream.
//
// Several token classes overlap in surface form (numbers vs. time literals,
// unit suffixes vs. AM/PM markers, currency symbols vs. operators); the
// lexer resolves as much of that as it can locally, and hands the rest
// (keyword vs. identifier vs. unit priority, in particular) to the
// classifier package, which needs a wider view of the surrounding tokens.
package lexer

import "fmt"

// Kind identifies a token's lexical class.
type Kind int

const (
	EOF Kind = iota
	NEWLINE
	NUMBER
	UNIT
	IDENTIFIER
	KEYWORD
	DATETIME
	HEADING
	COMMENT
	BOOLEAN

	// Operators and punctuation.
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	BANG
	TILDE
	AMP
	PIPE
	AMPAMP
	PIPEPIPE
	EQ
	NEQ
	LT
	LTE
	GT
	GTE
	SHL
	SHR
	ASSIGN
	LPAREN
	RPAREN
	COMMA
	ARROW // →
)

func (k Kind) String() string {
	names := map[Kind]string{
		EOF: "EOF", NEWLINE: "NEWLINE", NUMBER: "NUMBER", UNIT: "UNIT",
		IDENTIFIER: "IDENTIFIER", KEYWORD: "KEYWORD", DATETIME: "DATETIME",
		HEADING: "HEADING", COMMENT: "COMMENT", BOOLEAN: "BOOLEAN",
		PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
		CARET: "^", BANG: "!", TILDE: "~", AMP: "&", PIPE: "|",
		AMPAMP: "&&", PIPEPIPE: "||", EQ: "==", NEQ: "!=", LT: "<",
		LTE: "<=", GT: ">", GTE: ">=", SHL: "<<", SHR: ">>", ASSIGN: "=",
		LPAREN: "(", RPAREN: ")", COMMA: ",", ARROW: "→",
	}
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Lexeme is the raw source text; for NUMBER
// tokens this is kept as written (base prefix, exponent, digits, with any
// underscore separators removed) rather than parsed, so the evaluator
// controls numeric precision.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
	Offset int
}

// Keywords reserved regardless of surrounding context.
var Keywords = map[string]bool{
	"if": true, "then": true, "else": true, "to": true, "in": true,
	"per": true, "base": true, "mod": true, "xor": true, "and": true,
	"or": true, "not": true, "fraction": true, "binary": true,
	"octal": true, "hex": true, "scientific": true, "ordinal": true,
	"iso8601": true, "rfc9557": true, "rfc2822": true, "unix": true,
	"unixms": true,
}
