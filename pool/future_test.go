package pool

import (
	"errors"
	"testing"
	"time"
)

func TestFuture_GetBlocksUntilFulfilled(t *testing.T) {
	f := newFuture[string]()

	go func() {
		time.Sleep(20 * time.Millisecond)
		f.complete("done", nil)
	}()

	start := time.Now()
	v, err := f.Get()
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if v != "done" {
		t.Errorf("expected 'done', got %q", v)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Error("Get returned before the future was fulfilled")
	}
}

func TestFuture_RepeatedGetReturnsSameOutcome(t *testing.T) {
	f := newFuture[int]()
	wantErr := errors.New("task failed")
	f.complete(7, wantErr)

	for range 3 {
		v, err := f.Get()
		if v != 7 {
			t.Errorf("expected 7, got %d", v)
		}
		if !errors.Is(err, wantErr) {
			t.Errorf("expected task error, got %v", err)
		}
	}
	if err := f.Wait(); !errors.Is(err, wantErr) {
		t.Errorf("Wait: expected task error, got %v", err)
	}
}

func TestFuture_DoneSignalsCompletion(t *testing.T) {
	f := newFuture[int]()

	select {
	case <-f.Done():
		t.Fatal("Done closed before completion")
	default:
	}

	f.complete(1, nil)

	select {
	case <-f.Done():
	default:
		t.Fatal("Done not closed after completion")
	}
}
