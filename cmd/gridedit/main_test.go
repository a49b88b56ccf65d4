package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunScenarios(t *testing.T) {
	code, stdout, stderr := runArgs("../../internal/scenario/testdata/basics.yaml")
	if code != 0 {
		t.Fatalf("run() = %d, want 0\nstdout:\n%s\nstderr:\n%s", code, stdout, stderr)
	}
	if !strings.Contains(stdout, "PASS right thrice (") {
		t.Errorf("stdout missing PASS line:\n%s", stdout)
	}
	if strings.Contains(stdout, "FAIL") {
		t.Errorf("unexpected failure:\n%s", stdout)
	}
}

func TestRunScenarioFailure(t *testing.T) {
	path := writeFile(t, "fail.yaml", `name: wrong
content: "█ab"
steps:
  - keys: [End]
expect:
  content: "a█b"
`)

	code, stdout, _ := runArgs(path)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.HasPrefix(stdout, "FAIL wrong (") {
		t.Errorf("stdout = %q, want FAIL line", stdout)
	}
}

func TestRunScenarioLoadError(t *testing.T) {
	code, _, stderr := runArgs(filepath.Join(t.TempDir(), "missing.yaml"))
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr, "Error:") {
		t.Errorf("stderr = %q, want error", stderr)
	}
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runArgs("-version")
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout, "gridedit "+version) {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunFlagErrors(t *testing.T) {
	if code, _, _ := runArgs("-nope"); code != 2 {
		t.Errorf("run(-nope) = %d, want 2", code)
	}
	if code, _, stderr := runArgs("-h"); code != 0 || !strings.Contains(stderr, "Usage: gridedit") {
		t.Errorf("run(-h) = %d, stderr %q", code, stderr)
	}
}

func TestRunConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid log level", []string{"-log-level", "loud", "x.yaml"}},
		{"invalid width", []string{"-width", "-3", "x.yaml"}},
		{"unknown setting", []string{"-config", "", "x.yaml"}},
	}
	tests[2].args[1] = writeFile(t, "bad.toml", "[editor]\ncolour = 1\n")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(tt.args...)
			if code != 1 {
				t.Fatalf("run() = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if !strings.HasPrefix(stderr, "Error:") {
				t.Errorf("stderr = %q, want error", stderr)
			}
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(options{logLevel: "debug", logFile: "x.log", width: 12})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Editor.RowCapacity != 12 {
		t.Errorf("RowCapacity = %d, want 12", cfg.Editor.RowCapacity)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "x.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestScenarioLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	code, _, stderr := runArgs("-log-file", logPath, "-log-level", "debug", "../../internal/scenario/testdata/basics.yaml")
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "passed") {
		t.Errorf("log file has no scenario entries:\n%s", data)
	}
}
