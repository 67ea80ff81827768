package luca

import (
	"math/big"
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// num and f carry the parsed magnitude for integer and float tokens.
	num *big.Int
	f   float64
	// cur is the currency for currency tokens.
	cur currency.Unit
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenInt is an integer literal.
	tokenInt
	// tokenFloat is a floating-point literal.
	tokenFloat
	// tokenVar is a variable name.
	tokenVar
	// tokenOp is one of the operators + - * /.
	tokenOp
	// tokenOpen and tokenClose are ( and ).
	tokenOpen
	tokenClose
	// tokenAssign is =.
	tokenAssign
	// tokenCurrency is a currency glyph, € or $.
	tokenCurrency
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenInt:
		return "Int"
	case tokenFloat:
		return "Float"
	case tokenVar:
		return "Var"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenAssign:
		return "Assign"
	case tokenCurrency:
		return "Currency"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// currencies maps currency glyphs to their units. Units compare equal only
// to themselves, so the mixed-currency check falls out of ==.
var currencies = map[rune]currency.Unit{
	'€': currency.EUR,
	'$': currency.USD,
}

// lexer scans one line of input. The cursor only moves forward; once the
// source is exhausted, next returns EOF tokens forever.
type lexer struct {
	src string
	// i is the byte offset of the scan cursor.
	i int
	// rune is the 1-based rune column of the cursor, for error positions.
	rune int
	// p is the pushed-back token, if any.
	p lexToken
}

func lex(src string) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token. The parser uses this for its
// one-token assignment lookahead; the cursor itself never rewinds.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("luca: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("luca: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune and updates the lexer's position info. At the end
// of the source it returns utf8.RuneError with size 0.
func (l *lexer) readRune() (r rune, sz int) {
	if l.i >= len(l.src) {
		return utf8.RuneError, 0
	}
	r, sz = utf8.DecodeRuneInString(l.src[l.i:])
	l.i += sz
	l.rune++
	return r, sz
}

// unreadRune backs up over the most recently read rune of the given size.
func (l *lexer) unreadRune(sz int) {
	l.i -= sz
	l.rune--
}

// next scans the next token from the input. Once the source is exhausted it
// returns EOF tokens indefinitely.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for {
		tok := lexToken{pos: l.rune}
		r, sz := l.readRune()
		switch {
		case sz == 0:
			tok.kind = tokenEOF
			return tok, nil
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune(sz)
			return l.scanNum(tok)
		case unicode.IsLetter(r):
			l.unreadRune(sz)
			return l.scanVar(tok)
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case r == '=':
			tok.text = "="
			tok.kind = tokenAssign
			return tok, nil
		case r == '+', r == '-', r == '*', r == '/':
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			if cur, ok := currencies[r]; ok {
				tok.text = string(r)
				tok.kind = tokenCurrency
				tok.cur = cur
				return tok, nil
			}
			return tok, &LexError{Text: string(r), Col: tok.pos}
		}
	}
}

// scanNum scans an integer or float literal. A single decimal point turns
// the token into a float; a second one is a lexical error.
func (l *lexer) scanNum(tok lexToken) (lexToken, error) {
	start := l.i
	dot := false
	for {
		r, sz := l.readRune()
		if sz == 0 {
			break
		}
		switch {
		case '0' <= r && r <= '9':
			// keep scanning
		case r == '.':
			if dot {
				tok.text = l.src[start:l.i]
				return tok, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			dot = true
		default:
			l.unreadRune(sz)
			tok.text = l.src[start:l.i]
			return l.finishNum(tok, dot)
		}
	}
	tok.text = l.src[start:]
	return l.finishNum(tok, dot)
}

// finishNum converts the scanned literal into the token's magnitude.
func (l *lexer) finishNum(tok lexToken, dot bool) (lexToken, error) {
	if dot {
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return tok, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		tok.kind = tokenFloat
		tok.f = f
		return tok, nil
	}
	n, ok := new(big.Int).SetString(tok.text, 10)
	if !ok {
		return tok, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	if !fitsInt128(n) {
		return tok, &OverflowError{Text: tok.text, Col: tok.pos}
	}
	tok.kind = tokenInt
	tok.num = n
	return tok, nil
}

// scanVar scans a variable name: consecutive letters. Digits and every
// other rune end the name.
func (l *lexer) scanVar(tok lexToken) (lexToken, error) {
	start := l.i
	for {
		r, sz := l.readRune()
		if sz == 0 {
			break
		}
		if !unicode.IsLetter(r) {
			l.unreadRune(sz)
			tok.text = l.src[start:l.i]
			tok.kind = tokenVar
			return tok, nil
		}
	}
	tok.text = l.src[start:]
	tok.kind = tokenVar
	return tok, nil
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it failed, including the
	// offending rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be
	// "number" or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the 1-based rune column at which the token started.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
