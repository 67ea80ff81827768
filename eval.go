package luca

import (
	"strconv"
)

// Eval evaluates the statement against an environment and returns the
// resulting value. An assignment stores into the environment only after its
// right-hand side evaluated successfully, so a failing statement never
// mutates the environment.
func (e *Expr) Eval(env *Environment) (Value, error) {
	return e.n.eval(env)
}

// eval walks the tree depth first, left child before right child. Both
// operands of a binary operator are always evaluated.
func (n *node) eval(env *Environment) (Value, error) {
	switch n.kind {
	case nodeInt:
		return IntValue(n.num), nil
	case nodeFloat:
		return FloatValue(n.f), nil
	case nodeName:
		v, ok := env.Lookup(n.name)
		if !ok {
			return Value{}, &NameError{Name: n.name}
		}
		return v, nil
	case nodeNeg:
		v, err := n.left.eval(env)
		if err != nil {
			return Value{}, err
		}
		return v.Neg()
	case nodeNop:
		return n.left.eval(env)
	case nodeMoney:
		v, err := n.left.eval(env)
		if err != nil {
			return Value{}, err
		}
		// The parser only wraps number literals, so the child is Int or
		// Float here.
		return MoneyValue(v.Float64(), n.cur), nil
	case nodeAdd:
		l, r, err := n.operands(env)
		if err != nil {
			return Value{}, err
		}
		return l.Add(r)
	case nodeSub:
		l, r, err := n.operands(env)
		if err != nil {
			return Value{}, err
		}
		return l.Sub(r)
	case nodeMul:
		l, r, err := n.operands(env)
		if err != nil {
			return Value{}, err
		}
		return l.Mul(r)
	case nodeDiv:
		l, r, err := n.operands(env)
		if err != nil {
			return Value{}, err
		}
		return l.Div(r)
	case nodeAssign:
		v, err := n.right.eval(env)
		if err != nil {
			return Value{}, err
		}
		env.Set(n.name, v)
		return v, nil
	default:
		panic("luca: invalid AST node " + n.kind.String())
	}
}

func (n *node) operands(env *Environment) (l, r Value, err error) {
	l, err = n.left.eval(env)
	if err != nil {
		return Value{}, Value{}, err
	}
	r, err = n.right.eval(env)
	if err != nil {
		return Value{}, Value{}, err
	}
	return l, r, nil
}

// NameError is an error from a lookup for a variable that is missing from
// the environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
