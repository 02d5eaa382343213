/*
Command tlox runs tlox scripts or, without a script argument, starts an
interactive REPL.

	tlox [-trace Debug|Info|Error] [-init file] [script]

A script is parsed and resolved as a whole before it runs. The exit status is
65 if the script has syntax or resolution errors, 70 if it fails at runtime
and 74 if it cannot be read.

Within the REPL every line is a complete program; globals persist from line
to line. Lines starting with a colon are commands:

	:globals       list the names of global variables
	:tree <code>   display the syntax tree of code
	:help          list commands
	:quit          leave the REPL (as does <ctrl>D)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tlox.cli'
func tracer() tracing.Trace {
	return tracing.Select("tlox.cli")
}
