package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunParseExpression(t *testing.T) {
	oldExpr, oldDump := parseExpression, parseDumpAST
	defer func() { parseExpression, parseDumpAST = oldExpr, oldDump }()

	parseExpression = true
	parseDumpAST = false

	output := captureStdout(t, func() {
		if err := runParse(parseCmd, []string{"1 + 2 * 3"}); err != nil {
			t.Fatalf("runParse: %v", err)
		}
	})

	if !strings.Contains(output, "1") || !strings.Contains(output, "2") {
		t.Errorf("expected rendered expression in output, got %q", output)
	}
}

func TestRunParseDumpAST(t *testing.T) {
	oldExpr, oldDump := parseExpression, parseDumpAST
	defer func() { parseExpression, parseDumpAST = oldExpr, oldDump }()

	parseExpression = true
	parseDumpAST = true

	output := captureStdout(t, func() {
		if err := runParse(parseCmd, []string{"1 + 2"}); err != nil {
			t.Fatalf("runParse: %v", err)
		}
	})

	if !strings.Contains(output, "BinaryExpression (+)") {
		t.Errorf("expected a dumped BinaryExpression node, got %q", output)
	}
}

func TestRunParseReportsErrors(t *testing.T) {
	oldExpr, oldDump, oldNoRecover := parseExpression, parseDumpAST, noRecover
	defer func() { parseExpression, parseDumpAST, noRecover = oldExpr, oldDump, oldNoRecover }()

	parseExpression = false
	parseDumpAST = false
	noRecover = false

	err := parseWithoutStdoutNoise(t, "class { int x }")
	if err == nil {
		t.Fatal("expected an error for malformed input")
	}
	if !strings.Contains(err.Error(), "diagnostic") {
		t.Errorf("expected a diagnostic-count error, got %v", err)
	}
}

// parseWithoutStdoutNoise runs runParse on a full compilation unit,
// discarding whatever it writes to stdout/stderr so the test only
// inspects the returned error.
func parseWithoutStdoutNoise(t *testing.T, src string) error {
	t.Helper()
	var err error
	captureStdout(t, func() {
		oldStderr := os.Stderr
		_, w, _ := os.Pipe()
		os.Stderr = w
		err = runParse(parseCmd, []string{writeTempSource(t, src)})
		w.Close()
		os.Stderr = oldStderr
	})
	return err
}

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	f, ferr := os.CreateTemp(t.TempDir(), "*.cs")
	if ferr != nil {
		t.Fatalf("CreateTemp: %v", ferr)
	}
	defer f.Close()
	if _, werr := f.WriteString(src); werr != nil {
		t.Fatalf("WriteString: %v", werr)
	}
	return f.Name()
}

func TestResolveInputFile(t *testing.T) {
	oldExpr := parseExpression
	defer func() { parseExpression = oldExpr }()
	parseExpression = false

	path := writeTempSource(t, "class Foo {}")
	input, filename, err := resolveInput([]string{path})
	if err != nil {
		t.Fatalf("resolveInput: %v", err)
	}
	if filename != path {
		t.Errorf("filename = %q, want %q", filename, path)
	}
	if input != "class Foo {}" {
		t.Errorf("input = %q", input)
	}
}

func TestResolveInputExpressionRequiresArg(t *testing.T) {
	oldExpr := parseExpression
	defer func() { parseExpression = oldExpr }()
	parseExpression = true

	if _, _, err := resolveInput(nil); err == nil {
		t.Fatal("expected an error when -e is set with no argument")
	}
}

func TestUseColor(t *testing.T) {
	oldMode := colorMode
	defer func() { colorMode = oldMode }()

	colorMode = "always"
	if !useColor() {
		t.Error("always should force color on")
	}
	colorMode = "never"
	if useColor() {
		t.Error("never should force color off")
	}
}
