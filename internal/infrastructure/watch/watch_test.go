package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func(string) {
		count.Add(1)
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("snapshot.json")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("callback fired %d times, want 1", got)
	}
}

func TestDebouncer_DeliversLastPath(t *testing.T) {
	got := make(chan string, 1)
	d := NewDebouncer(30*time.Millisecond, func(path string) {
		select {
		case got <- path:
		default:
		}
	})
	defer d.Stop()

	d.Trigger("snapshot.json")
	d.Trigger("snapshot.yaml")

	select {
	case path := <-got:
		if path != "snapshot.yaml" {
			t.Errorf("callback path = %s, want the last triggered snapshot.yaml", path)
		}
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func(string) {
		count.Add(1)
	})
	d.Trigger("snapshot.json")
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := count.Load(); got != 0 {
		t.Errorf("callback fired %d times after Stop, want 0", got)
	}
}

func TestSnapshotWatcher_FiresOnSnapshotWrite(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 1)

	w, err := NewSnapshotWatcher(dir, []string{"snapshot.json"}, 20*time.Millisecond, func(path string) {
		select {
		case changed <- path:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewSnapshotWatcher error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)

	snapPath := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(snapPath, []byte(`{}`), 0600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	// An unrelated file in the same directory must not fire.
	if err := os.WriteFile(filepath.Join(dir, "report.json"), []byte(`{}`), 0600); err != nil {
		t.Fatalf("write report: %v", err)
	}

	select {
	case path := <-changed:
		if filepath.Base(path) != "snapshot.json" {
			t.Errorf("changed path = %s, want snapshot.json", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not fire on snapshot write")
	}

	cancel()
	<-done
}
