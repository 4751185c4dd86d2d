package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestSuiteWatcherDetectsNewFile(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var received []string

	w := NewSuiteWatcher(dir, func(path string) {
		mu.Lock()
		received = append(received, path)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Run(ctx) }()

	// Give watcher time to start.
	time.Sleep(100 * time.Millisecond)

	suitePath := filepath.Join(dir, "smoke.yaml")
	if err := os.WriteFile(suitePath, []byte("name: smoke\nsteps:\n  - name: s1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// Wait for debounce + processing.
	time.Sleep(500 * time.Millisecond)
	cancel()

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("expected 1 file, got %d", len(received))
	}
	if received[0] != suitePath {
		t.Errorf("got path %q, want %q", received[0], suitePath)
	}
}

func TestSuiteWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var received []string

	w := NewSuiteWatcher(dir, func(path string) {
		mu.Lock()
		received = append(received, path)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a suite"), 0600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	cancel()

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 0 {
		t.Errorf("expected 0 files for .txt, got %d", len(received))
	}
}

func TestSuiteWatcherContextCancellation(t *testing.T) {
	w := NewSuiteWatcher(t.TempDir(), func(path string) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil error on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}

func TestPollWatcherDetectsNewFile(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var received []string

	w := NewPollWatcher(dir, func(path string) {
		mu.Lock()
		received = append(received, path)
		mu.Unlock()
	}, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Run(ctx) }()

	suitePath := filepath.Join(dir, "smoke.yml")
	if err := os.WriteFile(suitePath, []byte("name: smoke\nsteps:\n  - name: s1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	cancel()

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("expected 1 file, got %d", len(received))
	}
}

func TestIsSuiteFile(t *testing.T) {
	cases := map[string]bool{
		"a.yaml":     true,
		"a.yml":      true,
		"A.YAML":     true,
		"a.yaml.tmp": false,
		"a.json":     false,
		"suites.d":   false,
	}
	for path, want := range cases {
		if got := IsSuiteFile(path); got != want {
			t.Errorf("IsSuiteFile(%q) = %v, want %v", path, got, want)
		}
	}
}
