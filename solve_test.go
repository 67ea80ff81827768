package luca_test

import (
	"errors"
	"testing"

	"github.com/0xfalafel/luca"
)

func TestSolve(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"int", "42", "42"},
		{"whitespace", "  1 + 2  ", "3"},
		{"nested-parens", "7 + 3 * (10 / (12 / (3 + 1) - 1))", "22"},
		{"triple-neg", "---42", "-42"},
		{"neg-product", "-6*-7 - 3", "39"},
		{"euro", "22€ + 8", "30.00 €"},
		{"dollar", "$33 * -4", "-132.00 $"},
		{"div-exact", "8 / 4", "2"},
		{"div-inexact", "10 / 4", "2.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := luca.Solve(c.src, luca.NewEnvironment())
			if err != nil {
				t.Fatalf("Solve(%q) failed: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("Solve(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestSolveDivisionByZero(t *testing.T) {
	for _, src := range []string{"5 / 0", "5 / 0.0", "5.5 / 0", "5€ / 0", "5 / (1 - 1)"} {
		_, err := luca.Solve(src, luca.NewEnvironment())
		if !errors.As(err, new(*luca.DivisionByZeroError)) {
			t.Errorf("Solve(%q) gave %v, want *DivisionByZeroError", src, err)
		}
	}
}

func TestSolveErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"undefined", "z"},
		{"trailing-op", "10 *"},
		{"number-after-money", "4€4"},
		{"empty", ""},
		{"bad-rune", "1 @ 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := luca.Solve(c.src, luca.NewEnvironment())
			if err == nil {
				t.Errorf("Solve(%q) = %q, want an error", c.src, got)
			}
		})
	}
}

func TestSolveAssignRoundTrip(t *testing.T) {
	exprs := []string{"5", "12.5", "22€ + 8", "10 / 4"}
	for _, e := range exprs {
		fresh, err := luca.Solve(e, luca.NewEnvironment())
		if err != nil {
			t.Fatalf("Solve(%q) failed: %v", e, err)
		}
		env := luca.NewEnvironment()
		assigned, err := luca.Solve("v = "+e, env)
		if err != nil {
			t.Fatalf("Solve(%q) failed: %v", "v = "+e, err)
		}
		read, err := luca.Solve("v", env)
		if err != nil {
			t.Fatalf("reading v back failed: %v", err)
		}
		if assigned != fresh || read != fresh {
			t.Errorf("round-trip of %q: fresh %q, assigned %q, read %q", e, fresh, assigned, read)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	env := luca.NewEnvironment(luca.SetVar("x", luca.Int64Value(7)))
	for _, src := range []string{"1 + 2", "x * x", "22€ + 8"} {
		a, err := luca.Solve(src, env)
		if err != nil {
			t.Fatalf("Solve(%q) failed: %v", src, err)
		}
		b, err := luca.Solve(src, env)
		if err != nil {
			t.Fatalf("second Solve(%q) failed: %v", src, err)
		}
		if a != b {
			t.Errorf("Solve(%q) gave %q then %q", src, a, b)
		}
	}
}

func TestSolveBuffer(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"assignments-flow-down",
			"price = 3\ntax = price * 2\nprice + tax",
			"3\n6\n9",
		},
		{
			"failures-blank",
			"1 + 1\noops +\n2 * 2",
			"2\n\n4",
		},
		{
			"blank-lines-blank",
			"\n5\n\n6",
			"\n5\n\n6",
		},
		{
			"later-lines-cannot-see-forward",
			"a + 1\na = 1",
			"\n1",
		},
		{
			"single-line",
			"21 * 2",
			"42",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := luca.SolveBuffer(c.src); got != c.want {
				t.Errorf("SolveBuffer(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestSolveBufferFreshEnvironment(t *testing.T) {
	// A pass must not see variables from a previous pass.
	if got := luca.SolveBuffer("a = 1"); got != "1" {
		t.Fatalf("first pass gave %q", got)
	}
	if got := luca.SolveBuffer("a"); got != "" {
		t.Errorf("second pass leaked state: %q", got)
	}
}

func TestSolveBufferOptions(t *testing.T) {
	got := luca.SolveBuffer("chat = 2\n3 chats", luca.PluralFallback(true))
	if got != "2\n6" {
		t.Errorf("plural buffer gave %q", got)
	}
}
