package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelve/internal/testsupport"
)

func writeTestConfig(t *testing.T, base string, historyEnabled bool) string {
	t.Helper()

	content := "[paths]\n" +
		"state_dir = \"" + filepath.Join(base, "state") + "\"\n" +
		"log_dir = \"" + filepath.Join(base, "logs") + "\"\n" +
		"[history]\n"
	if historyEnabled {
		content += "enabled = true\n"
	} else {
		content += "enabled = false\n"
	}

	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIOrganizeRun(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base, true)

	dir := filepath.Join(base, "inbox")
	testsupport.SeedDir(t, dir, "photo.JPG", "notes.txt", "archive.zip", "run", "backup/")

	out, _, err := runCLI(t, configPath, dir)
	if err != nil {
		t.Fatalf("organize run: %v", err)
	}

	for _, want := range []string{
		"Moved: archive.zip -> archives/",
		"Moved: notes.txt -> documents/",
		"Moved: photo.JPG -> images/",
		"Organized 3 files into",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "images", "photo.JPG")); err != nil {
		t.Errorf("photo.JPG not relocated: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "run")); err != nil {
		t.Errorf("extensionless file should remain: %v", err)
	}
}

func TestCLIMissingArgument(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base, false)

	_, _, err := runCLI(t, configPath)
	if err == nil {
		t.Fatal("expected error when directory argument is missing")
	}
	if !strings.Contains(err.Error(), "Usage:") {
		t.Fatalf("expected usage text in error, got %q", err.Error())
	}
}

func TestCLIPathNotFoundHint(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base, false)
	missing := filepath.Join(base, "does-not-exist")

	_, stderr, err := runCLI(t, configPath, missing)
	if err == nil {
		t.Fatal("expected error for missing target path")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should reference the bad path: %v", err)
	}
	if !strings.Contains(stderr, "Check that the supplied path") {
		t.Errorf("expected hint on stderr, got %q", stderr)
	}
	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Error("missing target must not be created")
	}
}

func TestCLIPlanPreview(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base, false)

	dir := filepath.Join(base, "inbox")
	testsupport.SeedDir(t, dir, "song.mp3", "README")

	out, _, err := runCLI(t, configPath, "plan", dir)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "song.mp3") || !strings.Contains(out, "Audio") {
		t.Errorf("plan table missing entries:\n%s", out)
	}
	if !strings.Contains(out, "Skipped: README (no extension)") {
		t.Errorf("plan should list skipped entries:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "song.mp3")); err != nil {
		t.Error("plan must not move files")
	}
}

func TestCLIHistoryAfterOrganize(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base, true)

	dir := filepath.Join(base, "inbox")
	testsupport.SeedDir(t, dir, "clip.mp4")

	if _, _, err := runCLI(t, configPath, dir); err != nil {
		t.Fatalf("organize run: %v", err)
	}

	out, _, err := runCLI(t, configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "clip.mp4") || !strings.Contains(out, "Videos") {
		t.Errorf("history output missing recorded move:\n%s", out)
	}
}

func TestCLIHistoryDisabled(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base, false)

	out, _, err := runCLI(t, configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "History is disabled") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCLIConfigInitAndShow(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "config.toml")

	out, _, err := runCLI(t, target, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("unexpected init output: %q", out)
	}

	if _, _, err := runCLI(t, target, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists without --overwrite")
	}

	out, _, err = runCLI(t, target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "History enabled: yes") {
		t.Errorf("unexpected show output:\n%s", out)
	}
}
