package lexer

import (
	"bufio"
	"io"
	"strings"
)

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
)

// New initializes a Lexer that reads runes from r.
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:     bufio.NewReader(r),
		tokens: []Token{},
		buf:    []rune{},
	}
}

// Lexer splits text into parentheses and atoms. It never validates what it
// reads: balancing parentheses and classifying atoms is up to the reader.
type Lexer struct {
	in *bufio.Reader

	tokens  []Token
	lastErr error

	buf []rune

	line  int
	col   int
	start int
}

// Scan reads the whole input and returns the tokens found in it. The only
// possible error comes from the underlying reader.
func (lx *Lexer) Scan() ([]Token, error) {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return lx.tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.line + 1,
		col:  lx.start + 1,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() (rune, error) {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, lx.in.UnreadRune()
}

func (lx *Lexer) next() (rune, error) {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return 0, err
	}
	if isNewLine(r) {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.start = lx.col

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexDefaultState
	case isOpenExpression(r):
		lx.buf = append(lx.buf, r)
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		lx.buf = append(lx.buf, r)
		return lexEmit(TokenCloseExpression)
	}

	lx.buf = append(lx.buf, r)
	return lexAtom
}

func lexAtom(lx *Lexer) lexState {
	for {
		p, err := lx.peek()
		if err != nil {
			lx.emit(TokenAtom)
			return lexStateError(err)
		}
		if isWhitespace(p) || isOpenExpression(p) || isCloseExpression(p) {
			break
		}
		r, _ := lx.next()
		lx.buf = append(lx.buf, r)
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize returns all the tokens within the given text. Parentheses are
// always tokens of their own and any other run of non-whitespace characters
// is an atom.
func Tokenize(in string) []Token {
	// strings.Reader never fails, so neither does Scan.
	tokens, _ := New(strings.NewReader(in)).Scan()
	return tokens
}
