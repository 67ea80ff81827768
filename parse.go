package luca

// Statement  = Assign | Expr
// Assign     = var '=' Expr
// Expr       = Term { ('+' | '-') Term }
// Term       = Factor { var | ('*' | '/') Factor }
// Factor     = ('+' | '-') Factor | Value | '(' Expr ')' | var
// Value      = currency Number | Number [currency]
// Number     = int | float
//
// A bare variable inside a term is an implicit multiplication, so "4a"
// means 4*a. A variable is only the head of an assignment when the token
// after it is '='; the parser decides with one token of lookahead through
// the lexer's pushback.

// Expr is a parsed statement that can be evaluated against an environment.
type Expr struct {
	// n is the root node of the statement.
	n *node
	// names is the list of variable names read by the statement.
	names []string
}

// maxDepth bounds the recursion of nested factors (parentheses and unary
// signs) so pathological nesting reports an error instead of exhausting the
// stack.
const maxDepth = 512

type parser struct {
	scan *lexer
	// tok is the current token.
	tok lexToken
	// names is the set of variable names read so far.
	names map[string]bool
	// depth is the current factor nesting depth.
	depth int
}

// Parse parses one statement. Constructing the parser fetches the first
// token, so lexical errors surface even for inputs that never reach the
// grammar.
func Parse(line string) (*Expr, error) {
	scan := lex(line)
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	p := parser{
		scan:  scan,
		tok:   tok,
		names: make(map[string]bool),
	}
	n, err := p.statement()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		// Anything left over, like the second 4 in "4€4", is an error.
		return nil, &UnexpectedTokenError{Col: p.tok.pos, Token: p.tok.text}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// advance scans the next token into p.tok.
func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) statement() (*node, error) {
	if p.tok.kind == tokenVar {
		name := p.tok
		la, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if la.kind == tokenAssign {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.kind == tokenEOF {
				return nil, &EmptyExpressionError{Col: p.tok.pos}
			}
			rhs, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeAssign, name: name.text, right: rhs}, nil
		}
		// Not an assignment; put the lookahead back and parse the variable
		// as the start of an expression.
		p.scan.push(la)
	}
	return p.expr()
}

func (p *parser) expr() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenOp && (p.tok.text == "+" || p.tok.text == "-") {
		kind := nodeAdd
		if p.tok.text == "-" {
			kind = nodeSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
	return n, nil
}

func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.tok.kind == tokenVar:
			// Implicit multiplication: 4a -> 4*a.
			p.names[p.tok.text] = true
			rhs := &node{kind: nodeName, name: p.tok.text}
			if err := p.advance(); err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case p.tok.kind == tokenOp && (p.tok.text == "*" || p.tok.text == "/"):
			kind := nodeMul
			if p.tok.text == "/" {
				kind = nodeDiv
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.factor()
			if err != nil {
				return nil, err
			}
			n = &node{kind: kind, left: n, right: rhs}
		default:
			return n, nil
		}
	}
}

func (p *parser) factor() (*node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, &DepthError{Col: p.tok.pos}
	}
	switch p.tok.kind {
	case tokenOp:
		// Unary sign; arbitrarily repeated signs are allowed.
		kind := nodeNop
		switch p.tok.text {
		case "+":
		case "-":
			kind = nodeNeg
		default:
			return nil, &UnexpectedTokenError{Col: p.tok.pos, Token: p.tok.text}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &node{kind: kind, left: rhs}, nil
	case tokenOpen:
		open := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokenClose {
			return nil, &EmptyExpressionError{Col: p.tok.pos, End: p.tok.text}
		}
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenClose {
			if p.tok.kind == tokenEOF {
				return nil, &BracketError{Col: p.tok.pos, Left: open.text}
			}
			return nil, &UnexpectedTokenError{Col: p.tok.pos, Token: p.tok.text}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case tokenVar:
		p.names[p.tok.text] = true
		n := &node{kind: nodeName, name: p.tok.text}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case tokenCurrency, tokenInt, tokenFloat:
		return p.value()
	case tokenClose:
		return nil, &BracketError{Col: p.tok.pos, Right: p.tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: p.tok.pos}
	default:
		return nil, &UnexpectedTokenError{Col: p.tok.pos, Token: p.tok.text}
	}
}

// value parses a number with an optional currency prefix or suffix. The
// currency wraps the single number it touches, not the surrounding term.
func (p *parser) value() (*node, error) {
	if p.tok.kind == tokenCurrency {
		cur := p.tok.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokenInt && p.tok.kind != tokenFloat {
			return nil, &UnexpectedTokenError{Col: p.tok.pos, Token: p.tok.text}
		}
		n, err := p.number()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeMoney, cur: cur, left: n}, nil
	}
	n, err := p.number()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokenCurrency {
		n = &node{kind: nodeMoney, cur: p.tok.cur, left: n}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *parser) number() (*node, error) {
	var n *node
	switch p.tok.kind {
	case tokenInt:
		n = &node{kind: nodeInt, num: p.tok.num}
	case tokenFloat:
		n = &node{kind: nodeFloat, f: p.tok.f}
	default:
		return nil, &UnexpectedTokenError{Col: p.tok.pos, Token: p.tok.text}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return n, nil
}

// Vars returns the variable names read when evaluating the statement. The
// assigned name of an assignment is not included unless the right-hand side
// also reads it.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed statement, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
