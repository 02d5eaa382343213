package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tlox/interp"
)

func TestScriptExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.cli")
	defer teardown()
	//
	dir := t.TempDir()
	scripts := []struct {
		source string
		status int
	}{
		{"var a = 1;", 0},
		{"var a = ;", exitSyntax},
		{"{ var a; var a; }", exitSyntax},
		{"var a = 1 / 0;", exitRuntime},
	}
	for i, s := range scripts {
		name := filepath.Join(dir, "script"+string(rune('a'+i))+".lox")
		if err := os.WriteFile(name, []byte(s.source), 0o644); err != nil {
			t.Fatal(err)
		}
		if status := runScript(name); status != s.status {
			t.Errorf("%q: expected exit status %d, got %d", s.source, s.status, status)
		}
	}
	if status := runScript(filepath.Join(dir, "missing.lox")); status != exitIO {
		t.Errorf("expected exit status %d for missing script, got %d", exitIO, status)
	}
}

func TestREPLCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.cli")
	defer teardown()
	//
	intp := &Intp{lox: interp.New()}
	if intp.Eval("var x = 3;") {
		t.Errorf("code must not quit the REPL")
	}
	if intp.Eval(":globals") || intp.Eval(":tree print 1 + 2;") || intp.Eval(":nope") {
		t.Errorf("commands must not quit the REPL")
	}
	if _, ok := intp.lox.Globals().Lookup("x"); !ok {
		t.Errorf("expected global x to persist")
	}
	if !intp.Eval(":quit") {
		t.Errorf("expected :quit to quit")
	}
}
