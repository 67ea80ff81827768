package luca

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// node is a node in the abstract syntax tree of a statement. Each node
// exclusively owns its children; the tree is built once per statement and
// consumed once by evaluation.
type node struct {
	kind nodeKind

	// name is the variable name for nodeName and nodeAssign.
	name string
	// num and f are the literal magnitudes for nodeInt and nodeFloat.
	num *big.Int
	f   float64
	// cur is the currency for nodeMoney.
	cur currency.Unit

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeInt   // integer literal
	nodeFloat // float literal
	nodeName  // variable reference

	nodeNeg   // evaluate left, then negate
	nodeNop   // evaluate left (unary +)
	nodeMoney // evaluate left, wrap in cur

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right

	nodeAssign // evaluate right, store under name, yield the value
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeInt:
		return "Int"
	case nodeFloat:
		return "Float"
	case nodeName:
		return "Name"
	case nodeNeg:
		return "Neg"
	case nodeNop:
		return "Nop"
	case nodeMoney:
		return "Money"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeAssign:
		return "Assign"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the tree, alternating round
// and square brackets per level.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeInt:
		b.WriteString(n.num.String())
	case nodeFloat:
		b.WriteString(strconv.FormatFloat(n.f, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeMoney:
		b.WriteString(moneyGlyph(n.cur))
		n.left.fmt(b, !square)
	case nodeAdd:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeSub:
		n.left.fmt(b, !square)
		b.WriteString(" - ")
		n.right.fmt(b, !square)
	case nodeMul:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeDiv:
		n.left.fmt(b, !square)
		b.WriteString(" / ")
		n.right.fmt(b, !square)
	case nodeAssign:
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.right.fmt(b, !square)
	default:
		panic("luca: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
