package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/interp"
	"github.com/npillmayer/tlox/parser"
	"github.com/npillmayer/tlox/runtime"
)

// Exit codes for script mode.
const (
	exitSyntax  = 65
	exitRuntime = 70
	exitIO      = 74
)

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	if flag.NArg() > 0 {
		os.Exit(runScript(flag.Arg(0)))
	}
	repl, err := readline.New("tlox> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(exitIO)
	}
	defer repl.Close()
	intp := &Intp{
		repl: repl,
		lox:  interp.New(),
	}
	pterm.Info.Println("Welcome to tlox") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")   // inform user how to stop the CLI
	intp.loadInitFile(*initf)             // init file name provided by flag
	intp.REPL()                           // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"tlox.cli", "tlox.scanner", "tlox.parser",
		"tlox.resolver", "tlox.runtime", "tlox.interp"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// runScript runs a script file and returns the exit status.
func runScript(filename string) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read script: %v\n", err)
		return exitIO
	}
	tracer().Infof("running script %s", filename)
	err = interp.New().Run(string(source))
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, interp.FormatError(string(source), err))
	var rerr *interp.RuntimeError
	if errors.As(err, &rerr) {
		return exitRuntime
	}
	return exitSyntax
}

// Intp is our REPL object.
type Intp struct {
	repl *readline.Instance
	lox  *interp.Interpreter
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	source, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	if err := intp.lox.Run(string(source)); err != nil {
		pterm.Error.Println(interp.FormatError(string(source), err))
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if intp.Eval(line) {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a REPL command or runs a line of code. It returns true if
// the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		if err := intp.lox.Run(line); err != nil {
			pterm.Error.Println(interp.FormatError(line, err))
		}
		return false
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true
	case ":globals":
		intp.globals()
	case ":tree":
		intp.tree(arg)
	case ":help":
		help()
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s, try :help", cmd))
	}
	return false
}

func (intp *Intp) globals() {
	var b strings.Builder
	intp.lox.Globals().Each(func(name string, v runtime.Value) {
		fmt.Fprintf(&b, "%-12s %s\n", name, v)
	})
	pterm.Print(b.String())
}

// tree displays the syntax tree of code on the terminal.
func (intp *Intp) tree(code string) {
	program, err := parser.Parse(code)
	if err != nil {
		pterm.Error.Println(interp.FormatError(code, err))
		return
	}
	var ll pterm.LeveledList
	for _, stmt := range program {
		ast.Inspect(stmt, func(n ast.Node, level int) bool {
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: ast.Label(n)})
			return true
		})
	}
	if len(ll) == 0 {
		pterm.Info.Println("empty program")
		return
	}
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.Println("program")
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func help() {
	pterm.Println(`:globals       list global variables
:tree <code>   display the syntax tree of code
:help          this message
:quit          leave (or <ctrl>D)`)
}
