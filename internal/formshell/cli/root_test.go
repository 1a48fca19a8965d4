package cli

import "testing"

func TestRootCommand(t *testing.T) {
	cmd := NewRoot()
	if cmd == nil || cmd.Use != "formshell" {
		t.Fatalf("expected root command")
	}
}

func TestRootSubcommands(t *testing.T) {
	cmd := NewRoot()
	want := map[string]bool{"run": false, "fill": false, "validate": false, "sink": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected %s command", name)
		}
	}
}
