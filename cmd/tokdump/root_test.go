package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tokdump/internal/logging"
)

func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(logging.EnvLog, "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStdin(t *testing.T) {
	out, _, err := runCmd(t, "let x = 42;\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "let\nx\n=\n42\n;\n" {
		t.Errorf("expected one token per line, got %q", out)
	}
}

func TestCRLFKeptInLexemes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"raw string", "x `a\r\nb` y\r\n", "x\n`a\r\nb`\ny\n"},
		{"crlf lines", "let x\r\n= 1;\r\n", "let\nx\n=\n1\n;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCmd(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out)
			}

			// тот же результат при чтении из файла
			path := writeFile(t, t.TempDir(), "crlf.txt", tt.input)
			out, _, err = runCmd(t, "", path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("file: expected %q, got %q", tt.want, out)
			}
		})
	}
}

func TestEmptyInputPrintsNothing(t *testing.T) {
	out, _, err := runCmd(t, "  // only a comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestFilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a1 a2")
	b := writeFile(t, dir, "b.txt", "b1")

	out, _, err := runCmd(t, "", b, a, "--jobs", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "b1\na1\na2\n" {
		t.Errorf("expected b then a, got %q", out)
	}
}

func TestReportsGoToStderr(t *testing.T) {
	out, errOut, err := runCmd(t, "x \"open\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x\n\"open\n" {
		t.Errorf("expected invalid token printed verbatim, got %q", out)
	}
	if !strings.Contains(errOut, "unterminated string literal") || !strings.Contains(errOut, "<stdin>:1:3") {
		t.Errorf("expected report on stderr, got %q", errOut)
	}

	_, errOut, err = runCmd(t, "\"open\n", "--log-level", "off")
	if err != nil {
		t.Fatal(err)
	}
	if errOut != "" {
		t.Errorf("expected silent stderr with logging off, got %q", errOut)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "custom.toml", "[lexer]\nline_comments = [\"#\"]\noperators = []\n")

	out, _, err := runCmd(t, "a == b # note\n", "--config", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a\n=\n=\nb\n" {
		t.Errorf("expected config to drive the lexer, got %q", out)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "[lexer\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{filepath.Join(dir, "nope.txt")}, "tokenization failed"},
		{"bad config", []string{"--config", bad}, "failed to parse TOML"},
		{"bad log level", []string{"--log-level", "chatty"}, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, "x", tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCmd(t, "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "tokdump ") {
		t.Errorf("expected version line, got %q", out)
	}
}

func TestTimingsOnStderr(t *testing.T) {
	out, errOut, err := runCmd(t, "a b", "--timings", "--log-level", "off")
	if err != nil {
		t.Fatal(err)
	}
	if out != "a\nb\n" {
		t.Errorf("timings must not touch stdout, got %q", out)
	}
	if !strings.Contains(errOut, "timings:") || !strings.Contains(errOut, "1 files, 2 tokens") {
		t.Errorf("expected timings summary on stderr, got %q", errOut)
	}
}
