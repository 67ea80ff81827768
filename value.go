package luca

import (
	"math/big"
	"strconv"

	"golang.org/x/text/currency"
)

// ValueKind discriminates the variants of a Value.
type ValueKind int8

const (
	// Int is a signed 128-bit integer.
	Int ValueKind = iota
	// Float is an IEEE double.
	Float
	// Money is a float64 amount tagged with a currency.
	Money
)

func (k ValueKind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Money:
		return "Money"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of evaluating a statement: an integer, a float, or a
// currency-tagged amount. Values are immutable once constructed; arithmetic
// always builds a new Value.
type Value struct {
	kind ValueKind
	// num is the magnitude for Int values.
	num *big.Int
	// f is the magnitude for Float values and the amount for Money values.
	f   float64
	cur currency.Unit
}

// int128 bounds. Literals and arithmetic results outside this range are
// errors rather than wraparound.
var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func fitsInt128(n *big.Int) bool {
	return n.Cmp(minInt128) >= 0 && n.Cmp(maxInt128) <= 0
}

// IntValue returns an Int value. The argument is not copied and must not be
// mutated afterward.
func IntValue(n *big.Int) Value {
	return Value{kind: Int, num: n}
}

// Int64Value returns an Int value from a machine integer.
func Int64Value(n int64) Value {
	return Value{kind: Int, num: big.NewInt(n)}
}

// FloatValue returns a Float value.
func FloatValue(f float64) Value {
	return Value{kind: Float, f: f}
}

// MoneyValue returns a Money value of the given amount and currency.
func MoneyValue(amount float64, cur currency.Unit) Value {
	return Value{kind: Money, f: amount, cur: cur}
}

// Kind reports the variant of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Currency returns the currency of a Money value. For other variants the
// result is the zero Unit.
func (v Value) Currency() currency.Unit {
	return v.cur
}

// Float64 returns the magnitude of the value as a float64. Int magnitudes
// beyond float64 precision are rounded.
func (v Value) Float64() float64 {
	if v.kind == Int {
		f, _ := new(big.Float).SetInt(v.num).Float64()
		return f
	}
	return v.f
}

func (v Value) isZero() bool {
	if v.kind == Int {
		return v.num.Sign() == 0
	}
	return v.f == 0
}

// moneyGlyphs holds the display glyph for each supported currency.
var moneyGlyphs = map[currency.Unit]string{
	currency.EUR: "€",
	currency.USD: "$",
}

func moneyGlyph(cur currency.Unit) string {
	if g, ok := moneyGlyphs[cur]; ok {
		return g
	}
	return cur.String()
}

// String formats the value for display: Int as plain decimal, Float as the
// shortest decimal that round-trips, Money with exactly two decimal places
// followed by the currency glyph.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return v.num.String()
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Money:
		return strconv.FormatFloat(v.f, 'f', 2, 64) + " " + moneyGlyph(v.cur)
	default:
		panic("luca: invalid value kind " + v.kind.String())
	}
}

// Add returns v + o under the promotion rules.
func (v Value) Add(o Value) (Value, error) {
	if v.kind == Money || o.kind == Money {
		cur, err := sharedCurrency(v, o)
		if err != nil {
			return Value{}, err
		}
		return MoneyValue(v.Float64()+o.Float64(), cur), nil
	}
	if v.kind == Float || o.kind == Float {
		return FloatValue(v.Float64() + o.Float64()), nil
	}
	return intResult(new(big.Int).Add(v.num, o.num), "+")
}

// Sub returns v - o under the promotion rules.
func (v Value) Sub(o Value) (Value, error) {
	if v.kind == Money || o.kind == Money {
		cur, err := sharedCurrency(v, o)
		if err != nil {
			return Value{}, err
		}
		return MoneyValue(v.Float64()-o.Float64(), cur), nil
	}
	if v.kind == Float || o.kind == Float {
		return FloatValue(v.Float64() - o.Float64()), nil
	}
	return intResult(new(big.Int).Sub(v.num, o.num), "-")
}

// Mul returns v * o under the promotion rules.
func (v Value) Mul(o Value) (Value, error) {
	if v.kind == Money || o.kind == Money {
		cur, err := sharedCurrency(v, o)
		if err != nil {
			return Value{}, err
		}
		return MoneyValue(v.Float64()*o.Float64(), cur), nil
	}
	if v.kind == Float || o.kind == Float {
		return FloatValue(v.Float64() * o.Float64()), nil
	}
	return intResult(new(big.Int).Mul(v.num, o.num), "*")
}

// Div returns v / o under the promotion rules. A divisor with an exactly
// zero magnitude fails before the division is attempted. Two Ints divide
// exactly to an Int when the remainder is zero and to a Float otherwise.
func (v Value) Div(o Value) (Value, error) {
	if o.isZero() {
		return Value{}, &DivisionByZeroError{}
	}
	if v.kind == Money || o.kind == Money {
		cur, err := sharedCurrency(v, o)
		if err != nil {
			return Value{}, err
		}
		return MoneyValue(v.Float64()/o.Float64(), cur), nil
	}
	if v.kind == Float || o.kind == Float {
		return FloatValue(v.Float64() / o.Float64()), nil
	}
	quo, rem := new(big.Int).QuoRem(v.num, o.num, new(big.Int))
	if rem.Sign() == 0 {
		return intResult(quo, "/")
	}
	l, _ := new(big.Float).SetInt(v.num).Float64()
	r, _ := new(big.Float).SetInt(o.num).Float64()
	return FloatValue(l / r), nil
}

// Neg returns the value with the sign of its magnitude flipped, preserving
// variant and currency.
func (v Value) Neg() (Value, error) {
	switch v.kind {
	case Int:
		return intResult(new(big.Int).Neg(v.num), "-")
	case Float:
		return FloatValue(-v.f), nil
	case Money:
		return MoneyValue(-v.f, v.cur), nil
	default:
		panic("luca: invalid value kind " + v.kind.String())
	}
}

// sharedCurrency picks the currency of a binary operation with at least one
// Money operand. Two Money operands must agree.
func sharedCurrency(v, o Value) (currency.Unit, error) {
	if v.kind == Money && o.kind == Money && v.cur != o.cur {
		return currency.Unit{}, &CurrencyError{Left: v.cur, Right: o.cur}
	}
	if v.kind == Money {
		return v.cur, nil
	}
	return o.cur, nil
}

// intResult wraps an integer magnitude, failing if it left the 128-bit
// range.
func intResult(n *big.Int, op string) (Value, error) {
	if !fitsInt128(n) {
		return Value{}, &OverflowError{Op: op}
	}
	return IntValue(n), nil
}

// DivisionByZeroError indicates a divisor that evaluated to an exactly zero
// magnitude.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// CurrencyError indicates a binary operation over two Money values of
// different currencies. There is no implicit conversion between currencies.
type CurrencyError struct {
	Left, Right currency.Unit
}

func (err *CurrencyError) Error() string {
	return "mismatched currencies: " + moneyGlyph(err.Left) + " and " + moneyGlyph(err.Right)
}

// OverflowError indicates an integer literal or result outside the signed
// 128-bit range.
type OverflowError struct {
	// Text is the literal, when the overflow came from the lexer.
	Text string
	// Col is the literal's 1-based rune column, or 0 for arithmetic
	// overflow.
	Col int
	// Op is the operator, when the overflow came from arithmetic.
	Op string
}

func (err *OverflowError) Error() string {
	if err.Col > 0 {
		return "integer exceeds 128 bits at column " + strconv.Itoa(err.Col) + ": " + err.Text
	}
	return "integer overflow in " + strconv.Quote(err.Op)
}

func (err *OverflowError) Pos() int {
	return err.Col
}
