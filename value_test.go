package luca_test

import (
	"errors"
	"math/big"
	"testing"

	"golang.org/x/text/currency"

	"github.com/0xfalafel/luca"
)

func TestValuePromotion(t *testing.T) {
	i := luca.Int64Value(6)
	f := luca.FloatValue(1.5)
	m := luca.MoneyValue(10, currency.EUR)
	cases := []struct {
		name string
		l, r luca.Value
		kind luca.ValueKind
	}{
		{"int-int", i, i, luca.Int},
		{"int-float", i, f, luca.Float},
		{"float-int", f, i, luca.Float},
		{"float-float", f, f, luca.Float},
		{"money-int", m, i, luca.Money},
		{"int-money", i, m, luca.Money},
		{"money-float", m, f, luca.Money},
		{"float-money", f, m, luca.Money},
		{"money-money", m, m, luca.Money},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, op := range []func(luca.Value) (luca.Value, error){c.l.Add, c.l.Sub, c.l.Mul, c.l.Div} {
				v, err := op(c.r)
				if err != nil {
					t.Fatalf("operation failed: %v", err)
				}
				if v.Kind() != c.kind {
					t.Errorf("%s op %s gave %s, want %s", c.l.Kind(), c.r.Kind(), v.Kind(), c.kind)
				}
			}
		})
	}
}

func TestValueIntDivision(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		want string
	}{
		{"exact", 8, 4, "2"},
		{"exact-negative", -8, 4, "-2"},
		{"inexact", 10, 4, "2.5"},
		{"inexact-negative", -10, 4, "-2.5"},
		{"smaller", 1, 2, "0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := luca.Int64Value(c.a).Div(luca.Int64Value(c.b))
			if err != nil {
				t.Fatal(err)
			}
			if v.String() != c.want {
				t.Errorf("%d / %d = %s, want %s", c.a, c.b, v, c.want)
			}
		})
	}
}

func TestValueDivisionByZero(t *testing.T) {
	zero := []luca.Value{
		luca.Int64Value(0),
		luca.FloatValue(0),
		luca.MoneyValue(0, currency.EUR),
	}
	nums := []luca.Value{
		luca.Int64Value(3),
		luca.FloatValue(3),
		luca.MoneyValue(3, currency.EUR),
	}
	for _, n := range nums {
		for _, z := range zero {
			if _, err := n.Div(z); !errors.As(err, new(*luca.DivisionByZeroError)) {
				t.Errorf("%s / %s gave %v, want *DivisionByZeroError", n, z, err)
			}
		}
	}
}

func TestValueCurrencyMismatch(t *testing.T) {
	eur := luca.MoneyValue(10, currency.EUR)
	usd := luca.MoneyValue(10, currency.USD)
	for _, op := range []func(luca.Value) (luca.Value, error){eur.Add, eur.Sub, eur.Mul, eur.Div} {
		if _, err := op(usd); !errors.As(err, new(*luca.CurrencyError)) {
			t.Errorf("mixing € and $ gave %v, want *CurrencyError", err)
		}
	}
	// Matching currencies carry through.
	v, err := eur.Add(luca.MoneyValue(5, currency.EUR))
	if err != nil {
		t.Fatal(err)
	}
	if v.Currency() != currency.EUR {
		t.Errorf("EUR + EUR has currency %v", v.Currency())
	}
}

func TestValueNeg(t *testing.T) {
	cases := []struct {
		name string
		v    luca.Value
		want string
	}{
		{"int", luca.Int64Value(42), "-42"},
		{"float", luca.FloatValue(2.5), "-2.5"},
		{"money", luca.MoneyValue(33, currency.USD), "-33.00 $"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := c.v.Neg()
			if err != nil {
				t.Fatal(err)
			}
			if v.String() != c.want {
				t.Errorf("-%s = %s, want %s", c.v, v, c.want)
			}
		})
	}
}

func TestValueOverflow(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	big127 := luca.IntValue(max)
	if _, err := big127.Add(luca.Int64Value(1)); !errors.As(err, new(*luca.OverflowError)) {
		t.Errorf("(2^127-1) + 1 gave %v, want *OverflowError", err)
	}
	if _, err := big127.Mul(luca.Int64Value(2)); !errors.As(err, new(*luca.OverflowError)) {
		t.Errorf("(2^127-1) * 2 gave %v, want *OverflowError", err)
	}
	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	if _, err := luca.IntValue(min).Neg(); !errors.As(err, new(*luca.OverflowError)) {
		t.Errorf("-(-2^127) gave %v, want *OverflowError", err)
	}
	// Within range stays fine.
	if v, err := big127.Sub(luca.Int64Value(1)); err != nil {
		t.Errorf("(2^127-1) - 1 failed: %v", err)
	} else if v.Kind() != luca.Int {
		t.Errorf("(2^127-1) - 1 is %s", v.Kind())
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		name string
		v    luca.Value
		want string
	}{
		{"int", luca.Int64Value(42), "42"},
		{"int-negative", luca.Int64Value(-7), "-7"},
		{"float", luca.FloatValue(2.5), "2.5"},
		{"float-whole", luca.FloatValue(3), "3"},
		{"money-eur", luca.MoneyValue(30, currency.EUR), "30.00 €"},
		{"money-usd", luca.MoneyValue(-132, currency.USD), "-132.00 $"},
		{"money-cents", luca.MoneyValue(3.141, currency.EUR), "3.14 €"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.String(); got != c.want {
				t.Errorf("display is %q, want %q", got, c.want)
			}
		})
	}
}
