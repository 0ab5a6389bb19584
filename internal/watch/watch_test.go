package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	stellarerrors "github.com/stellar-lang/stellar/internal/errors"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op       Op
		expected string
	}{
		{0, "NONE"},
		{OpWrite, "WRITE"},
		{OpCreate | OpWrite, "CREATE|WRITE"},
		{OpRemove | OpRename, "REMOVE|RENAME"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, got)
		}
	}
}

func TestWatcherReportsWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "song.stl")
	other := filepath.Join(dir, "other.stl")
	for _, p := range []string{target, other} {
		if err := os.WriteFile(p, []byte("wait 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := New(20*time.Millisecond, target)
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan Event, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ev Event) { events <- ev })
	}()

	go func() {
		_ = os.WriteFile(other, []byte("wait 2\n"), 0o644)
		for i := 0; i < 3; i++ {
			_ = os.WriteFile(target, []byte("play x\n"), 0o644)
		}
	}()

	select {
	case ev := <-events:
		if ev.Path != target {
			t.Errorf("expected=%q, got=%q", target, ev.Path)
		}
		if ev.Op&(OpWrite|OpCreate) == 0 {
			t.Errorf("expected a write, got %s", ev.Op)
		}
	case <-ctx.Done():
		t.Fatal("timeout waiting for change")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "song.stl")

	_, err := New(0, missing)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := stellarerrors.CategoryOf(err); got != stellarerrors.CategoryIO {
		t.Errorf("expected=%q, got=%q", stellarerrors.CategoryIO, got)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "b.stl")
	b := filepath.Join(dir, "a.stl")

	w, err := New(0, a, b)
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer w.Close()

	files := w.Files()
	if len(files) != 2 || files[0] != b || files[1] != a {
		t.Errorf("unexpected files: %v", files)
	}
}
