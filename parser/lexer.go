// File: lexer.go
// Title: LTL Lexical Analyzer (Tokenizer)
// Description: Converts textual LTL formulas into streams of tokens for
//              the parser. Handles the temporal keyword rules, greedy
//              multi-character operators and single-quoted string
//              constants, and records diagnostics for characters it
//              cannot recognize instead of aborting.

package parser

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Identifiers and literals
	TokenName    // request, pos.x, door_open
	TokenNumber  // 42
	TokenString  // 'green'
	TokenBoolean // true, FALSE

	// Boolean connectives
	TokenNot // !
	TokenAnd // &&, &
	TokenOr  // ||, |
	TokenXor // ^

	// Implications
	TokenImply   // ->
	TokenBiImply // <->

	// Temporal operators
	TokenNext       // X, next
	TokenAlways     // [], G
	TokenEventually // <>, F
	TokenUntil      // U
	TokenRelease    // R

	// Comparators
	TokenEquals    // =, ==
	TokenNotEquals // !=
	TokenLess      // <
	TokenLessEq    // <=
	TokenGreater   // >
	TokenGreaterEq // >=

	// Arithmetic
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenName:
		return "NAME"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenBoolean:
		return "BOOLEAN"
	case TokenNot:
		return "NOT"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenXor:
		return "XOR"
	case TokenImply:
		return "IMPLY"
	case TokenBiImply:
		return "BIIMPLY"
	case TokenNext:
		return "NEXT"
	case TokenAlways:
		return "ALWAYS"
	case TokenEventually:
		return "EVENTUALLY"
	case TokenUntil:
		return "UNTIL"
	case TokenRelease:
		return "RELEASE"
	case TokenEquals:
		return "EQUALS"
	case TokenNotEquals:
		return "NOT_EQUALS"
	case TokenLess:
		return "LESS"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreater:
		return "GREATER"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// LexError describes a stretch of input the lexer could not recognize.
// Diagnostics are collected and lexing continues past them.
type LexError struct {
	Offset  int    // Byte position of the offending input
	Line    int    // Line number (1-based)
	Char    string // The offending character
	Message string // Human-readable description
}

// Error implements the error interface
func (e *LexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at line %d, offset %d", e.Message, e.Line, e.Offset)
	}
	return fmt.Sprintf("illegal character %q at line %d, offset %d", e.Char, e.Line, e.Offset)
}

// Lexer performs lexical analysis of LTL formula input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// Tokenize returns all tokens from the input together with the
// diagnostics for input the lexer had to discard. The token slice
// always ends with an EOF token.
func (l *Lexer) Tokenize() ([]Token, []LexError) {
	var tokens []Token
	var diags []LexError

	for {
		tok, lerr := l.NextToken()
		if lerr != nil {
			diags = append(diags, *lerr)
			continue
		}

		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, diags
}

// Tokenize is a convenience function that lexes input in one call
func Tokenize(input string) ([]Token, []LexError) {
	return NewLexer(input).Tokenize()
}

// NextToken returns the next token from the input. When the input at
// the current position cannot form a token, it returns a non-nil
// LexError instead and skips past the offending character.
func (l *Lexer) NextToken() (Token, *LexError) {
	var tok Token

	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case '^':
		tok = newToken(TokenXor, l.ch, pos, line, column)
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '*':
		tok = newToken(TokenStar, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, line, column)
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = Token{Type: TokenAnd, Value: "&&", Position: pos, Line: line, Column: column}
		} else {
			// Single & is an alternative spelling of &&
			tok = Token{Type: TokenAnd, Value: "&", Position: pos, Line: line, Column: column}
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = Token{Type: TokenOr, Value: "||", Position: pos, Line: line, Column: column}
		} else {
			// Single | is an alternative spelling of ||
			tok = Token{Type: TokenOr, Value: "|", Position: pos, Line: line, Column: column}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEquals, Value: "!=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenNot, l.ch, pos, line, column)
		}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = Token{Type: TokenImply, Value: "->", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenMinus, l.ch, pos, line, column)
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenEquals, Value: "==", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenEquals, l.ch, pos, line, column)
		}
	case '<':
		switch {
		case l.peekChar() == '-' && l.peekCharAt(1) == '>':
			l.readChar()
			l.readChar()
			tok = Token{Type: TokenBiImply, Value: "<->", Position: pos, Line: line, Column: column}
		case l.peekChar() == '=':
			l.readChar()
			tok = Token{Type: TokenLessEq, Value: "<=", Position: pos, Line: line, Column: column}
		case l.peekChar() == '>':
			l.readChar()
			tok = Token{Type: TokenEventually, Value: "<>", Position: pos, Line: line, Column: column}
		default:
			tok = newToken(TokenLess, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEq, Value: ">=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenGreater, l.ch, pos, line, column)
		}
	case '[':
		if l.peekChar() == ']' {
			l.readChar()
			tok = Token{Type: TokenAlways, Value: "[]", Position: pos, Line: line, Column: column}
		} else {
			l.readChar()
			return Token{}, &LexError{Offset: pos, Line: line, Char: "["}
		}
	case '\'':
		value, ok := l.readString()
		if !ok {
			return Token{}, &LexError{
				Offset:  pos,
				Line:    line,
				Char:    "'",
				Message: "unterminated string constant",
			}
		}
		tok = Token{Type: TokenString, Value: value, Position: pos, Line: line, Column: column}
	case 0:
		return Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}, nil
	default:
		if isLetter(l.ch) {
			return l.readWord(pos, line, column), nil
		}
		if isDigit(l.ch) {
			tok = Token{Type: TokenNumber, Value: l.readNumber(), Position: pos, Line: line, Column: column}
			return tok, nil // Early return to avoid readChar()
		}
		ch := l.ch
		l.readChar()
		return Token{}, &LexError{Offset: pos, Line: line, Char: string(ch)}
	}

	l.readChar()
	return tok, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	return l.peekCharAt(0)
}

// peekCharAt returns the character offset positions past the next one
// without advancing
func (l *Lexer) peekCharAt(offset int) byte {
	if l.readPos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.readPos+offset]
}

// readWord lexes a run of identifier characters. Temporal keywords are
// carved off the front of the word: the reserved word "next" and a
// leading uppercase X, G, F, U or R whose second character is not a
// digit or underscore become operator tokens and the rest of the word
// is scanned again.
func (l *Lexer) readWord(pos, line, column int) Token {
	word := l.scanWord()

	tok := Token{Position: pos, Line: line, Column: column}

	switch {
	case strings.EqualFold(word, "true") || strings.EqualFold(word, "false"):
		tok.Type = TokenBoolean
		tok.Value = word
		l.advance(len(word))
	case strings.HasPrefix(word, "next") && (len(word) == 4 || !isNameEscape(word[4])):
		tok.Type = TokenNext
		tok.Value = "next"
		l.advance(4)
	case isTemporalLetter(word[0]) && (len(word) == 1 || !isNameEscape(word[1])):
		tok.Type = temporalType(word[0])
		tok.Value = string(word[0])
		l.advance(1)
	default:
		tok.Type = TokenName
		tok.Value = word
		l.advance(len(word))
	}

	return tok
}

// scanWord returns the identifier-shaped word starting at the current
// position without advancing the lexer
func (l *Lexer) scanWord() string {
	end := l.position
	for end < len(l.input) && isIdentChar(l.input[end]) {
		end++
	}
	return l.input[l.position:end]
}

// advance consumes n characters
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

// readNumber reads an unsigned integer literal
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a single-quoted string constant. There is no escape
// syntax. Returns false when the input ends before the closing quote.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1 // Skip opening quote

	for {
		l.readChar()
		if l.ch == '\'' {
			return l.input[start:l.position], true
		}
		if l.ch == 0 {
			return l.input[start:l.position], false
		}
	}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new single-character token
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character can start an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isIdentChar checks if the character can continue an identifier
func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '.' || ch == ':'
}

// isNameEscape reports whether ch, as the second character of a word,
// turns a leading temporal keyword back into an ordinary name
// (X1 and next_state are names, Xa is "X" applied to "a")
func isNameEscape(ch byte) bool {
	return isDigit(ch) || ch == '_'
}

// isTemporalLetter checks for the one-letter temporal keywords
func isTemporalLetter(ch byte) bool {
	switch ch {
	case 'X', 'G', 'F', 'U', 'R':
		return true
	}
	return false
}

// temporalType maps a one-letter temporal keyword to its token type
func temporalType(ch byte) TokenType {
	switch ch {
	case 'X':
		return TokenNext
	case 'G':
		return TokenAlways
	case 'F':
		return TokenEventually
	case 'U':
		return TokenUntil
	case 'R':
		return TokenRelease
	}
	return TokenName
}
