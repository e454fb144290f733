package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launchpad/internal/catalog"
	"launchpad/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := `
[paths]
catalog_path = "` + filepath.ToSlash(filepath.Join(base, "catalog.json")) + `"
icons_dir = "` + filepath.ToSlash(filepath.Join(base, "icons")) + `"
log_dir = "` + filepath.ToSlash(filepath.Join(base, "logs")) + `"

[logging]
level = "error"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return &cliTestEnv{baseDir: base, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func (env *cliTestEnv) writeTarget(t *testing.T, name string) string {
	t.Helper()
	return testsupport.WriteExecutable(t, env.baseDir, name)
}

func (env *cliTestEnv) listEntries(t *testing.T) []catalog.Entry {
	t.Helper()
	out, _, err := runCLI(t, []string{"list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var entries []catalog.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("parse list output: %v\n%s", err, out)
	}
	return entries
}

func TestAddAndListCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	target := env.writeTarget(t, "editor.exe")

	out, _, err := runCLI(t, []string{"add", target, "--category", "Tools"}, env.configPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Added editor")
	requireContains(t, out, "Tools")

	entries := env.listEntries(t)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Name != "editor" || entries[0].Path != target {
		t.Fatalf("entry = %+v", entries[0])
	}

	out, _, err = runCLI(t, []string{"category", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("category list: %v", err)
	}
	requireContains(t, out, "Tools")
}

func TestAddDefaultsToUncategorized(t *testing.T) {
	env := setupCLITestEnv(t)
	target := env.writeTarget(t, "tool.exe")

	out, _, err := runCLI(t, []string{"add", target}, env.configPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Uncategorized")
}

func TestRemoveCommandIsolatesFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	target := env.writeTarget(t, "editor.exe")

	if _, _, err := runCLI(t, []string{"add", target}, env.configPath); err != nil {
		t.Fatalf("add: %v", err)
	}
	entries := env.listEntries(t)

	out, _, err := runCLI(t, []string{"remove", entries[0].ID, "ghost"}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for the failed removal")
	}
	requireContains(t, out, "Removed 1 of 2")
	requireContains(t, out, "ghost")

	if remaining := env.listEntries(t); len(remaining) != 0 {
		t.Fatalf("entries after remove = %d, want 0", len(remaining))
	}
}

func TestValidateCommandFlagsMissingTargets(t *testing.T) {
	env := setupCLITestEnv(t)
	target := env.writeTarget(t, "fleeting.exe")

	if _, _, err := runCLI(t, []string{"add", target}, env.configPath); err != nil {
		t.Fatalf("add: %v", err)
	}
	os.Remove(target)

	out, _, err := runCLI(t, []string{"validate"}, env.configPath)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, out, "1 invalid")
	requireContains(t, out, "missing")
}

func TestConfigInitCommand(t *testing.T) {
	tmp := t.TempDir()
	targetPath := filepath.Join(tmp, "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", targetPath}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(targetPath); err != nil {
		t.Fatalf("expected config file at %s: %v", targetPath, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", targetPath}, ""); err == nil {
		t.Fatal("expected error without --overwrite")
	}
}
