package main

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{
		"version":   false,
		"browse":    false,
		"search":    false,
		"show":      false,
		"serve":     false,
		"bot":       false,
		"mcp-serve": false,
		"config":    false,
	}

	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	root := newRootCmd()
	flag := root.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not registered")
	}
	if flag.DefValue != "configs/moviesearch.yaml" {
		t.Errorf("--config default = %q, want %q", flag.DefValue, "configs/moviesearch.yaml")
	}
	if flag.Shorthand != "c" {
		t.Errorf("--config shorthand = %q, want %q", flag.Shorthand, "c")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCmd()
	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}
}

func TestShowCommand_RequiresOneArg(t *testing.T) {
	cmd := newShowCmd()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("show command should require an id")
	}
	if err := cmd.Args(cmd, []string{"tt1", "tt2"}); err == nil {
		t.Error("show command should reject two ids")
	}
	if err := cmd.Args(cmd, []string{"tt0468569"}); err != nil {
		t.Errorf("show command should accept one id: %v", err)
	}
}

func TestBrowseCommand_OptionalPath(t *testing.T) {
	cmd := newBrowseCmd()
	if err := cmd.Args(cmd, []string{}); err != nil {
		t.Errorf("browse should accept no path: %v", err)
	}
	if err := cmd.Args(cmd, []string{"/", "/movies"}); err == nil {
		t.Error("browse should reject two paths")
	}
}

func TestSearchCommand_Flags(t *testing.T) {
	cmd := newSearchCmd()
	for name, def := range map[string]string{"page": "1", "type": "all"} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("--%s flag not registered", name)
			continue
		}
		if flag.DefValue != def {
			t.Errorf("--%s default = %q, want %q", name, flag.DefValue, def)
		}
	}
}

func TestSearchCommand_RejectsUnknownType(t *testing.T) {
	cmd := newSearchCmd()
	cmd.SetArgs([]string{"--type", "game", "Batman"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestConfigCommand_HasValidateSubcommand(t *testing.T) {
	cmd := newConfigCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "validate" {
			found = true
			break
		}
	}
	if !found {
		t.Error("config command missing 'validate' subcommand")
	}
}
