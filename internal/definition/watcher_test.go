package definition

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/chartwire/internal/logging"
)

func newWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := NewWatcher(WithDebounce(20*time.Millisecond), WithWatcherLogger(logging.Nop()))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWatcherWatchErrors(t *testing.T) {
	w := newWatcher(t)
	dir := writeFiles(t, map[string]string{"a.toml": "", "b.lua": ""})
	a := filepath.Join(dir, "a.toml")

	if err := w.Watch(filepath.Join(dir, "missing.toml")); !errors.Is(err, ErrPathNotExist) {
		t.Errorf("Watch(missing) = %v", err)
	}
	if err := w.Watch(a); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Watch(a); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("second Watch = %v", err)
	}
	if err := w.Watch(filepath.Join(dir, "b.lua")); err != nil {
		t.Fatalf("Watch(b): %v", err)
	}
	if got := w.Watched(); len(got) != 2 || got[0] != a {
		t.Errorf("Watched() = %v", got)
	}

	if err := w.Unwatch(filepath.Join(dir, "b.lua")); err != nil {
		t.Errorf("Unwatch: %v", err)
	}
	if err := w.Unwatch(filepath.Join(dir, "b.lua")); !errors.Is(err, ErrNotWatching) {
		t.Errorf("second Unwatch = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Watch(a); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch after Close = %v", err)
	}
	if err := w.Start(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Start after Close = %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	w := newWatcher(t)
	dir := writeFiles(t, map[string]string{"chart.toml": "type = \"line\"\n", "other.toml": ""})
	path := filepath.Join(dir, "chart.toml")

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	events := make(chan Event, 16)
	w.OnChange(func(e Event) { events <- e })
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !w.IsRunning() {
		t.Fatal("watcher not running")
	}

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("type = \"bar\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case e := <-events:
		if e.Path != path {
			t.Errorf("event path = %q, want %q", e.Path, path)
		}
		if e.Op != OpWrite && e.Op != OpCreate {
			t.Errorf("event op = %v", e.Op)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for watched file")
	}

	w.Stop()
	if w.IsRunning() {
		t.Error("watcher still running after Stop")
	}
}

func TestOperationString(t *testing.T) {
	tests := map[Operation]string{
		OpWrite:        "write",
		OpCreate:       "create",
		OpRemove:       "remove",
		OpRename:       "rename",
		Operation(200): "unknown",
	}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
