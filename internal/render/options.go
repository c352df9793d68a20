// SPDX-License-Identifier: MIT

// Package render holds the text layout shared by vectors and matrices:
// the bracketed row form, the boxed column form, the bordered matrix block,
// and the functional options that control how a single element is printed.
package render

import "strings"

// DefaultVerb is the fmt verb applied to every element unless WithVerb says otherwise.
const DefaultVerb = "%v"

const panicVerbInvalid = "render: WithVerb: verb must contain exactly one '%' directive"

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via Gather.
type Options struct {
	verb string // DefaultVerb
}

// WithVerb sets the fmt verb used to print each element, e.g. "%.2f" or "%3d".
// Panics unless verb holds exactly one complete directive; "%%" is a literal
// percent sign and does not count.
func WithVerb(verb string) Option {
	if countDirectives(verb) != 1 {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// Gather applies opts over the defaults, last writer wins.
func Gather(opts ...Option) Options {
	o := Options{verb: DefaultVerb}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Verb reports the resolved element verb.
func (o Options) Verb() string { return o.verb }

// countDirectives returns the number of fmt directives in format, or -1 when
// a '%' is not followed by a verb letter or asks for extra arguments
// ('*' widths, [n] indexes).
func countDirectives(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		// flags, width and precision
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i == len(format) || format[i] == '*' || format[i] == '[' {
			return -1
		}
		n++
	}

	return n
}
