// File: parser.go
// Title: LTL Formula Parser
// Description: Implements precedence climbing over the fixed LTL
//              operator table. Builds recursive AST nodes from the
//              token stream and fails with a typed syntax error on the
//              first token that cannot be placed.

package parser

import (
	"strconv"
	"strings"

	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
	ltlog "github.com/tlforge/ltlspec/core/log"
)

// associativity of a binary operator level
type assoc int

const (
	assocLeft  assoc = iota // a op b op c groups as (a op b) op c
	assocRight              // a op b op c groups as a op (b op c)
	assocNone               // a op b op c is a syntax error
)

// opClass selects the AST node constructed for a binary operator
type opClass int

const (
	opLogical opClass = iota
	opComparator
	opArithmetic
)

// opInfo describes one binary operator in the precedence table
type opInfo struct {
	prec   int    // Binding strength, higher binds tighter
	assoc  assoc  // Grouping of same-level chains
	class  opClass
	symbol string // Canonical operator spelling in the AST
}

// binaryOps is the fixed binary operator table. The table is never
// mutated after init, so concurrent parses can share it.
var binaryOps = map[TokenType]opInfo{
	TokenUntil:   {prec: 1, assoc: assocRight, class: opLogical, symbol: "U"},
	TokenRelease: {prec: 1, assoc: assocRight, class: opLogical, symbol: "R"},
	TokenBiImply: {prec: 2, assoc: assocRight, class: opLogical, symbol: "<->"},
	TokenImply:   {prec: 3, assoc: assocRight, class: opLogical, symbol: "->"},
	TokenXor:     {prec: 4, assoc: assocLeft, class: opLogical, symbol: "^"},
	TokenOr:      {prec: 5, assoc: assocLeft, class: opLogical, symbol: "||"},
	TokenAnd:     {prec: 6, assoc: assocLeft, class: opLogical, symbol: "&&"},

	TokenEquals:    {prec: 9, assoc: assocNone, class: opComparator, symbol: "="},
	TokenNotEquals: {prec: 9, assoc: assocNone, class: opComparator, symbol: "!="},
	TokenLess:      {prec: 9, assoc: assocNone, class: opComparator, symbol: "<"},
	TokenLessEq:    {prec: 9, assoc: assocNone, class: opComparator, symbol: "<="},
	TokenGreater:   {prec: 9, assoc: assocNone, class: opComparator, symbol: ">"},
	TokenGreaterEq: {prec: 9, assoc: assocNone, class: opComparator, symbol: ">="},

	TokenStar:  {prec: 10, assoc: assocNone, class: opArithmetic, symbol: "*"},
	TokenSlash: {prec: 10, assoc: assocNone, class: opArithmetic, symbol: "/"},
	TokenPlus:  {prec: 11, assoc: assocNone, class: opArithmetic, symbol: "+"},
	TokenMinus: {prec: 11, assoc: assocNone, class: opArithmetic, symbol: "-"},
}

// Prefix operator binding strengths. The temporal prefixes bind tighter
// than the boolean connectives, negation tighter still, and the
// comparators tighter than negation.
const (
	precTemporal = 7
	precNot      = 8
)

// prefixOps maps prefix operator tokens to binding strength and
// canonical AST spelling
var prefixOps = map[TokenType]struct {
	prec   int
	symbol string
}{
	TokenNext:       {prec: precTemporal, symbol: "X"},
	TokenAlways:     {prec: precTemporal, symbol: "[]"},
	TokenEventually: {prec: precTemporal, symbol: "<>"},
	TokenNot:        {prec: precNot, symbol: "!"},
}

// Options configures a parse run
type Options struct {
	// Logger receives parse-attempt debug entries and lexer
	// diagnostics. Defaults to the package default logger.
	Logger *ltlog.Logger
}

// Parser consumes a token stream and builds the recursive AST
type Parser struct {
	tokens []Token
	pos    int
}

// Parse lexes and parses a formula into its recursive AST
func Parse(input string) (ast.Node, error) {
	return ParseWith(input, nil)
}

// ParseWith lexes and parses a formula with explicit options. Lexer
// diagnostics are logged as warnings; the parse itself fails only when
// the remaining token stream is unparsable.
func ParseWith(input string, opts *Options) (ast.Node, error) {
	logger := ltlog.GetDefault()
	if opts != nil && opts.Logger != nil {
		logger = opts.Logger
	}

	logger.Debug("parsing formula", ltlog.Fields{"length": len(input)})

	tokens, diags := Tokenize(input)
	for i := range diags {
		logger.Warn("discarded input during lexing", ltlog.Fields{
			"offset": diags[i].Offset,
			"line":   diags[i].Line,
			"char":   diags[i].Char,
		})
	}

	p := &Parser{tokens: tokens}

	node, err := p.parseExpression(1)
	if err != nil {
		return nil, err
	}

	if tok := p.current(); tok.Type != TokenEOF {
		return nil, p.syntaxError(tok, "unexpected input after formula")
	}

	logger.Debug("parsed formula", ltlog.Fields{"nodes": ast.Count(node)})

	return node, nil
}

// parseExpression parses binary operator chains whose operators bind at
// least as tightly as minPrec
func (p *Parser) parseExpression(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		info, ok := binaryOps[tok.Type]
		if !ok || info.prec < minPrec {
			return left, nil
		}
		p.advance()

		// Right-associative operators re-admit their own level on
		// the right-hand side, the others do not
		nextMin := info.prec + 1
		if info.assoc == assocRight {
			nextMin = info.prec
		}

		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}

		left = makeBinary(info, left, right)

		if info.assoc == assocNone {
			if next, chained := binaryOps[p.current().Type]; chained && next.prec == info.prec {
				return nil, p.syntaxError(p.current(), "operator cannot be chained")
			}
		}
	}
}

// parseUnary parses any prefix operators before the next operand
func (p *Parser) parseUnary() (ast.Node, error) {
	tok := p.current()

	if info, ok := prefixOps[tok.Type]; ok {
		p.advance()
		operand, err := p.parseExpression(info.prec)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Symbol: info.symbol, Operand: operand}, nil
	}

	return p.parsePrimary()
}

// parsePrimary parses literals, variables and parenthesized groups
func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.current()

	switch tok.Type {
	case TokenBoolean:
		p.advance()
		return &ast.Bool{Value: strings.EqualFold(tok.Value, "true")}, nil

	case TokenNumber:
		p.advance()
		value, err := strconv.Atoi(tok.Value)
		if err != nil {
			return nil, lterror.Wrap(err, "numeric literal out of range").
				WithCode(lterror.CodeSyntax).
				WithOperation("parser.Parse").
				WithDetail("token", tok.String())
		}
		return &ast.Num{Value: value}, nil

	case TokenString:
		p.advance()
		return &ast.Str{Value: tok.Value}, nil

	case TokenName:
		p.advance()
		return &ast.Var{Name: tok.Value}, nil

	case TokenLeftParen:
		p.advance()
		inner, err := p.parseExpression(1)
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRightParen {
			return nil, p.syntaxError(p.current(), "missing closing parenthesis")
		}
		p.advance()
		return inner, nil

	default:
		return nil, p.syntaxError(tok, "expected an operand")
	}
}

// makeBinary builds the AST node for a binary operator application
func makeBinary(info opInfo, left, right ast.Node) ast.Node {
	switch info.class {
	case opComparator:
		return &ast.Comparator{Symbol: info.symbol, Left: left, Right: right}
	case opArithmetic:
		return &ast.Arithmetic{Symbol: info.symbol, Left: left, Right: right}
	default:
		return &ast.Binary{Symbol: info.symbol, Left: left, Right: right}
	}
}

// current returns the token under examination without consuming it
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

// advance consumes the current token
func (p *Parser) advance() {
	p.pos++
}

// syntaxError builds the typed failure for an unexpected token
func (p *Parser) syntaxError(tok Token, message string) error {
	return lterror.Newf("%s: got %s", message, tok).
		WithCode(lterror.CodeSyntax).
		WithOperation("parser.Parse").
		WithDetails(map[string]interface{}{
			"token":  tok.String(),
			"line":   tok.Line,
			"column": tok.Column,
			"offset": tok.Position,
		})
}
