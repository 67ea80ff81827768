//go:build go1.18
// +build go1.18

package luca_test

import (
	"testing"

	"github.com/0xfalafel/luca"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("a = 5")
	f.Add("22€ + 8")
	f.Add("4a / (1 - 1)")
	f.Fuzz(func(t *testing.T, s string) {
		luca.Parse(s)
	})
}
