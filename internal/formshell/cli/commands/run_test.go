package commands

import (
	"bytes"
	"testing"

	"github.com/mistakeknot/formshell/internal/formshell/form"
	"github.com/mistakeknot/formshell/internal/formshell/tui"
)

func TestRunLaunchesTUI(t *testing.T) {
	formPath := writeTempFile(t, "form.yaml", fillForm)
	origRun := runTUI
	var got *form.Definition
	var gotOpts tui.Options
	runTUI = func(def *form.Definition, opts tui.Options) error {
		got = def
		gotOpts = opts
		return nil
	}
	defer func() { runTUI = origRun }()

	cmd := RunCmd()
	cmd.SetArgs([]string{formPath, "--endpoint", "http://127.0.0.1:8787/api/submissions"})
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Title != "Signup" {
		t.Fatalf("expected loaded definition, got %+v", got)
	}
	if gotOpts.Endpoint != "http://127.0.0.1:8787/api/submissions" {
		t.Fatalf("expected flag endpoint passed through, got %q", gotOpts.Endpoint)
	}
	if gotOpts.AdvanceDelay <= 0 || gotOpts.SubmitTimeout <= 0 {
		t.Fatalf("expected configured timings, got %+v", gotOpts)
	}
}

func TestRunRejectsBrokenDefinition(t *testing.T) {
	formPath := writeTempFile(t, "form.yaml", "title: Broken\nsteps: []\n")
	origRun := runTUI
	runTUI = func(def *form.Definition, opts tui.Options) error {
		t.Fatal("did not expect the TUI to launch")
		return nil
	}
	defer func() { runTUI = origRun }()

	cmd := RunCmd()
	cmd.SetArgs([]string{formPath})
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestResolveEndpoint(t *testing.T) {
	cases := []struct {
		name                     string
		flag, definition, config string
		want                     string
	}{
		{"flag wins", "http://flag", "http://def", "http://cfg", "http://flag"},
		{"definition kept", "", "http://def", "http://cfg", ""},
		{"config fallback", "", "", "http://cfg", "http://cfg"},
		{"nothing set", "", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveEndpoint(tc.flag, tc.definition, tc.config)
			if got != tc.want {
				t.Fatalf("resolveEndpoint(%q, %q, %q) = %q, want %q",
					tc.flag, tc.definition, tc.config, got, tc.want)
			}
		})
	}
}
