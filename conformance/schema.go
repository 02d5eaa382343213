/*
Package conformance runs suites of tlox programs, described in YAML files,
and checks their output and errors.

A suite looks like this:

	name: closures
	description: closures capture variables, not values
	tests:
	  - name: counter
	    source: |
	      fun make() { var i = 0; fun f() { i += 1; return i; } return f; }
	      var c = make(); c();
	      print c();
	    expect:
	      output: ["2"]

Expected errors are given by kind: one of the runtime error kinds
(TypeError, ReferenceError, ...), SyntaxError or ResolutionError. Match is a
regular expression the error message has to match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package conformance

// Suite is the content of a single YAML file.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Tests       []Case `yaml:"tests"`
}

// Case is a single program together with its expected outcome.
type Case struct {
	Name   string      `yaml:"name"`
	Source string      `yaml:"source"`
	Skip   string      `yaml:"skip,omitempty"` // reason
	Expect Expectation `yaml:"expect"`
}

// Expectation is the outcome of a run. Output is compared line by line and
// has to match in full, even if an error is expected.
type Expectation struct {
	Output []string `yaml:"output,omitempty"`
	Error  string   `yaml:"error,omitempty"`
	Match  string   `yaml:"match,omitempty"`
}

// Loaded is a test case together with its origin.
type Loaded struct {
	File  string
	Suite string
	Case  Case
}

// ID names a loaded test case.
func (l Loaded) ID() string {
	return l.Suite + "/" + l.Case.Name
}
