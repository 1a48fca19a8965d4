package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runValidate(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := ValidateCmd()
	cmd.SetArgs(args)
	out := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestValidateReportsStepCounts(t *testing.T) {
	formPath := writeTempFile(t, "form.yaml", fillForm)
	out, _, err := runValidate(t, formPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "ok (5 steps, 2 required, 0 warnings)") {
		t.Fatalf("unexpected report %q", out)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	formPath := writeTempFile(t, "form.yaml", `title: Dup
steps:
  - id: name
    type: text
    label: Name
  - id: name
    type: text
    label: Name again
`)
	_, _, err := runValidate(t, formPath)
	if err == nil || !strings.Contains(err.Error(), "duplicate field id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidatePrintsWarnings(t *testing.T) {
	formPath := writeTempFile(t, "form.yaml", `title: Odd
steps:
  - id: mind
    type: telepathy
    label: Read my mind
`)
	out, stderr, err := runValidate(t, formPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "warning:") {
		t.Fatalf("expected fallback warning, got %q", stderr)
	}
	if !strings.Contains(out, "1 warnings") {
		t.Fatalf("unexpected report %q", out)
	}
}
