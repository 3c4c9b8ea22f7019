package cli

import (
	"strconv"

	"github.com/spf13/pflag"
)

// actionValue is a boolean flag that runs fn each time it is set. Several
// of them writing the same field resolve in command-line order, so the last
// one given wins.
type actionValue struct {
	fn  func()
	set bool
}

func (a *actionValue) String() string {
	return strconv.FormatBool(a.set)
}

func (a *actionValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	if v {
		a.set = true
		a.fn()
	}

	return nil
}

func (a *actionValue) Type() string {
	return "bool"
}

// stringAction is a string flag that passes its argument to fn.
type stringAction struct {
	fn    func(string)
	value string
	kind  string
}

func (s *stringAction) String() string {
	return s.value
}

func (s *stringAction) Set(v string) error {
	s.value = v
	s.fn(v)

	return nil
}

func (s *stringAction) Type() string {
	return s.kind
}

// action registers a boolean flag backed by fn.
func action(flags *pflag.FlagSet, name, shorthand, usage string, fn func()) *pflag.Flag {
	flag := flags.VarPF(&actionValue{fn: fn}, name, shorthand, usage)
	flag.NoOptDefVal = "true"

	return flag
}
