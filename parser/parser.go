package parser

import (
	"strconv"

	"github.com/xiam/lispster/ast"
	"github.com/xiam/lispster/lexer"
)

// Parser reads expressions from a token stream. Every call to Read advances
// the same cursor, so consecutive calls return consecutive top-level forms.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser over the given tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// More reports whether there are unread tokens.
func (p *Parser) More() bool {
	return p.pos < len(p.tokens)
}

// Remaining returns the tokens that were not consumed yet.
func (p *Parser) Remaining() []lexer.Token {
	return p.tokens[p.pos:]
}

func (p *Parser) peek() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

// eofError points at the end of the last token, if any.
func (p *Parser) eofError() error {
	if len(p.tokens) == 0 {
		return &SyntaxError{Kind: ErrUnexpectedEOF}
	}
	last := p.tokens[len(p.tokens)-1]
	line, col := last.Pos()
	return &SyntaxError{Kind: ErrUnexpectedEOF, Line: line, Col: col + len([]rune(last.Text()))}
}

// Read consumes exactly the tokens of the next expression and returns it.
func (p *Parser) Read() (*ast.Node, error) {
	tok := p.next()
	if tok == nil {
		return nil, p.eofError()
	}

	switch tok.Type() {
	case lexer.TokenOpenExpression:
		return p.readList(tok)

	case lexer.TokenCloseExpression:
		line, col := tok.Pos()
		return nil, &SyntaxError{Kind: ErrUnexpectedCloseParen, Line: line, Col: col}
	}

	return Atom(tok), nil
}

func (p *Parser) readList(open *lexer.Token) (*ast.Node, error) {
	children := []*ast.Node{}
	for {
		next := p.peek()
		if next == nil {
			return nil, p.eofError()
		}
		if next.Is(lexer.TokenCloseExpression) {
			p.next()
			return ast.NewList(open, children), nil
		}
		child, err := p.Read()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// Atom classifies a token: an integer if it parses as one, otherwise a float
// if it parses as one, otherwise a symbol. "10" is always an integer.
func Atom(tok *lexer.Token) *ast.Node {
	text := tok.Text()
	if i64, ok := parseInt(text); ok {
		return ast.NewInt(tok, i64)
	}
	if f64, ok := parseFloat(text); ok {
		return ast.NewFloat(tok, f64)
	}
	return ast.NewSymbol(tok, text)
}

func parseInt(text string) (int64, bool) {
	i64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return i64, true
}

func parseFloat(text string) (float64, bool) {
	f64, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range values are still numbers (±Inf).
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f64, true
		}
		return 0, false
	}
	return f64, true
}

// Parse tokenizes the input and reads a single expression from it. Tokens
// after the first expression are ignored.
func Parse(in string) (*ast.Node, error) {
	return New(lexer.Tokenize(in)).Read()
}

// ParseAll reads every top-level expression in the input.
func ParseAll(in string) ([]*ast.Node, error) {
	p := New(lexer.Tokenize(in))

	nodes := []*ast.Node{}
	for p.More() {
		node, err := p.Read()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
