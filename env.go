package luca

import (
	"strings"
)

// Environment is the mutable variable store shared across consecutive Solve
// calls. One environment belongs to one document or session; the engine
// never creates one on its own, it only mutates the one it is handed. It is
// not safe to use an Environment concurrently.
type Environment struct {
	vars map[string]Value
	// plural enables retrying a lookup with one trailing "s" stripped.
	plural bool
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption(*Environment)
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt   map[string]Value
	pluralopt bool
)

func (o varopt) envOption(env *Environment)    { env.vars[o.name] = o.val }
func (o pluralopt) envOption(env *Environment) { env.plural = bool(o) }

func (o varsopt) envOption(env *Environment) {
	for k, v := range o {
		env.vars[k] = v
	}
}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val Value) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]Value) EnvOption {
	return varsopt(vars)
}

// PluralFallback makes lookups of an unknown name ending in "s" retry the
// singular form, so that "enfants" resolves through "enfant". Off by
// default.
func PluralFallback(on bool) EnvOption {
	return pluralopt(on)
}

// NewEnvironment creates an empty variable environment and applies the
// given options in order.
func NewEnvironment(opts ...EnvOption) *Environment {
	env := &Environment{vars: make(map[string]Value)}
	for _, opt := range opts {
		opt.envOption(env)
	}
	return env
}

// Set stores a value under a name, overwriting any previous value.
func (env *Environment) Set(name string, val Value) {
	env.vars[name] = val
}

// Lookup returns the last value assigned to a name. With the plural
// fallback enabled, an unknown name ending in "s" is retried without its
// final "s" before reporting a miss.
func (env *Environment) Lookup(name string) (Value, bool) {
	v, ok := env.vars[name]
	if !ok && env.plural && strings.HasSuffix(name, "s") {
		v, ok = env.vars[strings.TrimSuffix(name, "s")]
	}
	return v, ok
}

// Names returns the defined variable names in sorted order.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.vars))
	for k := range env.vars {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Len reports the number of defined variables.
func (env *Environment) Len() int {
	return len(env.vars)
}

// Clone creates a copy of the environment and applies options to it.
// Mutating the copy does not affect the original.
func (env *Environment) Clone(opts ...EnvOption) *Environment {
	n := &Environment{
		vars:   make(map[string]Value, len(env.vars)),
		plural: env.plural,
	}
	for k, v := range env.vars {
		n.vars[k] = v
	}
	for _, opt := range opts {
		opt.envOption(n)
	}
	return n
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
