package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/chartwire/internal/definition"
	"github.com/dshills/chartwire/internal/engine"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRendersSnapshot(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "chart.yaml", `
id: demo
type: line
labels: [a, b]
datasets:
  - label: visits
    data: [2, 9]
`)
	writeFile(t, dir, "cb.lua", `
chart.callback("elements.point.radius", function(ctx) return ctx.raw end)
`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-def", def, "-script", filepath.Join(dir, "cb.lua"), "-compact", "-log-level", "error"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact output spans %d lines", strings.Count(out, "\n"))
	}
	if !gjson.Valid(out) {
		t.Fatalf("output is not JSON: %s", out)
	}
	if id := gjson.Get(out, "id").String(); id != "demo" {
		t.Errorf("id = %q", id)
	}
	if r := gjson.Get(out, "datasets.0.points.1.radius").Float(); r != 9 {
		t.Errorf("scripted radius = %v, want 9", r)
	}
}

func TestRunPositionalDefinition(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "chart.json", `{"type": "pie", "labels": ["x"], "datasets": [{"data": [1]}]}`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-log-level", "error", def}, &stdout, &stderr); code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if typ := gjson.Get(stdout.String(), "type").String(); typ != "pie" {
		t.Errorf("type = %q", typ)
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "type = \"gantt\"\n")
	badScript := writeFile(t, dir, "ok.toml", "script = \"missing.lua\"\n")

	tests := []struct {
		name string
		args []string
		want int
		msg  string
	}{
		{"no definition", nil, 2, "definition file is required"},
		{"bad flag", []string{"-nope"}, 2, "nope"},
		{"bad log level", []string{"-log-level", "loud", bad}, 2, "invalid log level"},
		{"invalid definition", []string{bad}, 1, "gantt"},
		{"missing script", []string{badScript}, 1, "missing.lua"},
		{"missing file", []string{filepath.Join(dir, "none.toml")}, 1, "none.toml"},
		{"version", []string{"-version"}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.want {
				t.Errorf("run = %d, want %d (stderr: %s)", code, tt.want, stderr.String())
			}
			if tt.msg != "" && !strings.Contains(stderr.String(), tt.msg) {
				t.Errorf("stderr %q does not mention %q", stderr.String(), tt.msg)
			}
		})
	}
}

func TestRunEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "chart.toml", "type = \"bar\"\n")
	t.Setenv("CHARTWIRE_COMPACT", "true")
	t.Setenv("CHARTWIRE_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	if code := run([]string{def}, &stdout, &stderr); code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if strings.Count(stdout.String(), "\n") != 1 {
		t.Errorf("env compact not applied: %s", stdout.String())
	}

	t.Setenv("CHARTWIRE_TICK_COUNT", "zero")
	stdout.Reset()
	stderr.Reset()
	if code := run([]string{def}, &stdout, &stderr); code != 1 {
		t.Errorf("invalid env override: run = %d, want 1", code)
	}
}

func TestSessionLogsSnapshotChanges(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "chart.toml", "id = \"demo\"\ntype = \"bar\"\nlabels = [\"a\"]\n[[datasets]]\ndata = [1]\n")

	var stdout, logs bytes.Buffer
	s := &session{
		opts:   cliOptions{DefPath: def, Settings: definition.DefaultSettings()},
		out:    &stdout,
		logger: logging.New(logging.Config{Level: logging.LevelInfo, Output: &logs}),
		engine: engine.NewWithDefaults(),
	}
	if _, err := s.render(); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if _, err := s.render(); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(logs.String(), "unchanged") {
		t.Errorf("identical reload not reported as unchanged: %s", logs.String())
	}

	writeFile(t, dir, "chart.toml", "id = \"demo\"\ntype = \"bar\"\nlabels = [\"a\"]\n[[datasets]]\ndata = [7]\n")
	if _, err := s.render(); err != nil {
		t.Fatalf("third render: %v", err)
	}
	if strings.Count(logs.String(), "unchanged") != 1 || !strings.Contains(logs.String(), "modified") {
		t.Errorf("changed data not reported: %s", logs.String())
	}
}

func TestChangeSummary(t *testing.T) {
	prev := native.NewObject()
	prev.SetNumber(native.StringKey("a"), 1)
	prev.SetString(native.StringKey("b"), "x")
	next := native.NewObject()
	next.SetNumber(native.StringKey("a"), 2)
	next.SetBool(native.StringKey("c"), true)

	if got := changeSummary(native.Diff(prev, next)); got != "1 added, 1 modified, 1 removed" {
		t.Errorf("changeSummary = %q", got)
	}
	if got := changeSummary(native.Diff(prev, prev)); got != "unchanged" {
		t.Errorf("changeSummary(same) = %q", got)
	}
}
