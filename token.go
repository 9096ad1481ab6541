// SPDX-License-Identifier: MIT
package tokenizer

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Kind int holding an identifier for the Token lexical categories.
	Kind int

	// Token holds one lexical unit recognized from the source text.
	//
	// Lexeme is the exact substring the token was recognized from; it is a
	// copy independent of the source buffer's lifetime. Literal carries the
	// decoded value for KindNumber (float64) & KindString (the raw inner
	// text), nil otherwise.
	Token struct {
		Literal any
		Lexeme  string
		Kind    Kind
		Line    int
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_           Kind = iota // Consume 0 to start actual numbering at 1.
	KindLeftParen           // '('.
	KindRightParen          // ')'.
	KindLeftBrace           // '{'.
	KindRightBrace          // '}'.
	KindStar                // '*'.
	KindDot                 // '.'.
	KindComma               // ','.
	KindPlus                // '+'.
	KindMinus               // '-'.
	KindSemicolon           // ';'.
	KindSlash               // '/'.
	KindEqual               // '='.
	KindEqualEqual          // '=='.
	KindBang                // '!'.
	KindBangEqual           // '!='.
	KindLess                // '<'.
	KindLessEqual           // '<='.
	KindGreater             // '>'.
	KindGreaterEqual        // '>='.
	KindString              // Quoted literal.
	KindNumber              // Numeric literal.
	KindIdentifier          // Non reserved-word name.
	KindAnd                 // Reserved words.
	KindClass
	KindElse
	KindFalse
	KindFor
	KindFun
	KindIf
	KindNil
	KindOr
	KindPrint
	KindReturn
	KindSuper
	KindThis
	KindTrue
	KindVar
	KindWhile
	KindEOF // End of the source.
)

var kindNames = [...]string{
	KindLeftParen:    "LEFT_PAREN",
	KindRightParen:   "RIGHT_PAREN",
	KindLeftBrace:    "LEFT_BRACE",
	KindRightBrace:   "RIGHT_BRACE",
	KindStar:         "STAR",
	KindDot:          "DOT",
	KindComma:        "COMMA",
	KindPlus:         "PLUS",
	KindMinus:        "MINUS",
	KindSemicolon:    "SEMICOLON",
	KindSlash:        "SLASH",
	KindEqual:        "EQUAL",
	KindEqualEqual:   "EQUAL_EQUAL",
	KindBang:         "BANG",
	KindBangEqual:    "BANG_EQUAL",
	KindLess:         "LESS",
	KindLessEqual:    "LESS_EQUAL",
	KindGreater:      "GREATER",
	KindGreaterEqual: "GREATER_EQUAL",
	KindString:       "STRING",
	KindNumber:       "NUMBER",
	KindIdentifier:   "IDENTIFIER",
	KindAnd:          "AND",
	KindClass:        "CLASS",
	KindElse:         "ELSE",
	KindFalse:        "FALSE",
	KindFor:          "FOR",
	KindFun:          "FUN",
	KindIf:           "IF",
	KindNil:          "NIL",
	KindOr:           "OR",
	KindPrint:        "PRINT",
	KindReturn:       "RETURN",
	KindSuper:        "SUPER",
	KindThis:         "THIS",
	KindTrue:         "TRUE",
	KindVar:          "VAR",
	KindWhile:        "WHILE",
	KindEOF:          "EOF",
}

// keywords maps reserved-word lexemes to their Kind.
//
// Consulted once per identifier, after the maximal run is known.
var keywords = map[string]Kind{
	"and":    KindAnd,
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"for":    KindFor,
	"fun":    KindFun,
	"if":     KindIf,
	"nil":    KindNil,
	"or":     KindOr,
	"print":  KindPrint,
	"return": KindReturn,
	"super":  KindSuper,
	"this":   KindThis,
	"true":   KindTrue,
	"var":    KindVar,
	"while":  KindWhile,
}

// String is the `fmt.Stringer` interface implementation for Kind.
func (k Kind) String() (name string) {
	if k > 0 && int(k) < len(kindNames) {
		name = kindNames[k]
		return
	}

	name = fmt.Sprintf("KIND(%d)", int(k))

	return
}

// Keywords lists the reserved words in lexicographic order.
func Keywords() (words []string) {
	words = maps.Keys(keywords)
	slices.Sort(words)

	return
}

// String renders a Token as "KIND lexeme literal", using "null" for an
// absent literal.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, t.literalString())
}

func (t Token) literalString() (out string) {
	switch value := t.Literal.(type) {
	case nil:
		out = "null"
	case float64:
		out = formatNumber(value)
	case string:
		out = value
	default:
		out = fmt.Sprint(value)
	}

	return
}

// formatNumber renders a numeric literal with an explicit fraction,
// "123" scans to "123.0" & "123.45" stays "123.45".
//
// Magnitudes at or above 1e16 & below 1e-4 render in scientific notation,
// matching Python's str(float) thresholds.
func formatNumber(value float64) string {
	abs := math.Abs(value)
	switch {
	case value != 0 && (abs >= 1e16 || abs < 1e-4):
		return strconv.FormatFloat(value, 'e', -1, 64)
	case math.Trunc(value) == value:
		return strconv.FormatFloat(value, 'f', 1, 64)
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}
