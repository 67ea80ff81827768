package luca

import (
	"strings"
)

// Solve evaluates one line of input against a shared environment and
// formats the result for display. Failures at any stage (lexical, syntax,
// evaluation) return a typed error and leave the environment unchanged for
// that line.
func Solve(line string, env *Environment) (string, error) {
	e, err := Parse(strings.TrimSpace(line))
	if err != nil {
		return "", err
	}
	v, err := e.Eval(env)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// SolveBuffer evaluates a whole text buffer the way an editing surface
// does: a fresh environment for the pass, one line at a time from top to
// bottom, so a variable assigned on one line is visible on the lines below
// it. The result has exactly one output line per input line; lines that
// fail to evaluate, including blank ones, produce a blank result line.
func SolveBuffer(text string, opts ...EnvOption) string {
	env := NewEnvironment(opts...)
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		r, err := Solve(line, env)
		if err != nil {
			continue
		}
		out[i] = r
	}
	return strings.Join(out, "\n")
}
