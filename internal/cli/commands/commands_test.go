package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "scpi" {
		t.Errorf("expected Use to be 'scpi', got %s", cmd.Use)
	}

	expectedCommands := []string{
		"version",
		"expand",
		"lookup",
		"list",
		"tokenize",
		"init",
	}

	for _, expected := range expectedCommands {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %s to be registered", expected)
		}
	}
}

func TestExpandCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewExpandCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"SYSTem:ERRor[:NEXT]", "--format", "json", "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expand failed: %v", err)
	}

	var expansions []struct {
		Expression string `json:"expression"`
		Min        string `json:"min"`
		Max        string `json:"max"`
		Pattern    string `json:"pattern"`
	}
	if err := json.Unmarshal(out.Bytes(), &expansions); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out.String())
	}

	if len(expansions) != 1 {
		t.Fatalf("expected 1 expansion, got %d", len(expansions))
	}
	if expansions[0].Min != "SYST:ERR" {
		t.Errorf("min: got %s, want SYST:ERR", expansions[0].Min)
	}
	if expansions[0].Max != "SYSTEM:ERROR:NEXT" {
		t.Errorf("max: got %s, want SYSTEM:ERROR:NEXT", expansions[0].Max)
	}
	if expansions[0].Pattern != `\:?SYST(EM)?\:ERR(OR)?(\:NEXT)?$` {
		t.Errorf("unexpected pattern %s", expansions[0].Pattern)
	}
}

func TestExpandCommandInvalidExpression(t *testing.T) {
	cmd := NewExpandCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"SYSTem[:ERRor"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unbalanced expression")
	}
}

func TestLookupCommand(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := NewLookupCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"syst:err", "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if !strings.Contains(out.String(), "SYSTem:ERRor[:NEXT]") {
		t.Errorf("output missing resolved expression:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "read-only") {
		t.Errorf("output missing access mode:\n%s", out.String())
	}
}

func TestLookupCommandNotFound(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewLookupCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"IDN", "--no-color"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "IDN") {
		t.Errorf("error should carry the unresolved name: %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error should carry a suggestion: %v", err)
	}
}

func TestListCommandJSON(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := NewListCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var rows []struct {
		Expression string `json:"expression"`
		Min        string `json:"min"`
		Access     string `json:"access"`
	}
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if len(rows) != 15 {
		t.Errorf("expected 15 built-in commands, got %d", len(rows))
	}
	if rows[0].Expression != "*CLS" {
		t.Errorf("expected *CLS first, got %s", rows[0].Expression)
	}
}

func TestTokenizeCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewTokenizeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"*rst", "*idn?;*cls", "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}

	if !strings.Contains(out.String(), `"*rst\n*idn?\n*cls\n"`) {
		t.Errorf("output missing canonical message:\n%s", out.String())
	}
}

func TestTokenizeCommandRequests(t *testing.T) {
	var out bytes.Buffer
	cmd := NewTokenizeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"SOUR:FREQ 1000;SOUR:VOLT?", "--requests", "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("tokenize --requests failed: %v", err)
	}

	if !strings.Contains(out.String(), "SOUR:FREQ [args 1000]") {
		t.Errorf("output missing parsed write request:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "query SOUR:VOLT") {
		t.Errorf("output missing parsed query request:\n%s", out.String())
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("scpi.yml", []byte("builtin: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when scpi.yml exists")
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
