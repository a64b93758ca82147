// Package env renders environment tables for container command lines and
// flags entries that look like they hold secrets.
package env

import (
	"strings"

	"github.com/wellmaintained/projgen/pkg/model"
)

type formatOptions struct {
	strict bool
}

// FormatOption tunes DockerFlags.
type FormatOption func(*formatOptions)

// Strict escapes backslash, double quote, dollar and backtick inside the
// quoted value. It is off by default so that generated commands match the
// plain `-e NAME="VALUE"` form exactly.
func Strict() FormatOption {
	return func(o *formatOptions) {
		o.strict = true
	}
}

var strictEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// DockerFlags joins vars into `-e NAME="VALUE"` tokens separated by single
// spaces, in input order. An empty input yields "".
//
// Values are wrapped in double quotes and nothing else: a value containing a
// double quote produces a broken command line unless Strict is given. Names
// are not checked.
func DockerFlags(vars []model.EnvVar, opts ...FormatOption) string {
	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}

	tokens := make([]string, 0, len(vars))
	for _, v := range vars {
		value := v.Value
		if o.strict {
			value = strictEscaper.Replace(value)
		}
		tokens = append(tokens, `-e `+v.Name+`="`+value+`"`)
	}
	return strings.Join(tokens, " ")
}
