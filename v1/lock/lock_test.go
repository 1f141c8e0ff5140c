package lock

import (
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestFlagTryLockUnlock(t *testing.T) {
	f := NewFlag()
	if f.Locked() {
		t.Fatal("new flag should be unlocked")
	}
	if !f.TryLock() {
		t.Fatal("expected first trylock to succeed")
	}
	if f.TryLock() {
		t.Fatal("expected flag held")
	}
	if !f.Unlock() {
		t.Fatal("unlock should report the flag was locked")
	}
	if f.Locked() {
		t.Fatal("flag should be unlocked after unlock")
	}
	if !f.TryLock() {
		t.Fatal("expected flag re-acquired")
	}
}

func TestFlagUnlockTwiceReportsUnlocked(t *testing.T) {
	f := NewFlag()
	f.TryLock()
	if !f.Unlock() {
		t.Fatal("first unlock should report locked")
	}
	if f.Unlock() {
		t.Fatal("second unlock should report already unlocked")
	}
}

func TestFlagConcurrentTryLockSingleWinner(t *testing.T) {
	f := NewFlag()
	var wins atomic.Int32
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			if f.TryLock() {
				wins.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()
	if n := wins.Load(); n != 1 {
		t.Fatalf("expected exactly one winner, got %d", n)
	}
}
