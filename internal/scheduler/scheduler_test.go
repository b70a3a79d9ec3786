package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestAddIntervalRunsTask(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = svc.Stop() })

	var runs atomic.Int32
	done := make(chan struct{})
	_, err = svc.AddInterval("tick", 10*time.Millisecond, func() {
		if runs.Add(1) == 1 {
			close(done)
		}
	})
	if err != nil {
		t.Fatalf("AddInterval() error = %v", err)
	}
	if len(svc.Jobs()) != 1 {
		t.Fatalf("Jobs() = %d, want 1", len(svc.Jobs()))
	}

	svc.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("interval job did not run")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = svc.Stop() })

	if _, err := svc.AddInterval("", time.Minute, func() {}); !errors.Is(err, ErrEmptyJobName) {
		t.Fatalf("AddInterval(empty name) error = %v, want ErrEmptyJobName", err)
	}
	if _, err := svc.AddInterval("sweep", 0, func() {}); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("AddInterval(0) error = %v, want ErrInvalidPeriod", err)
	}
	if _, err := svc.AddInterval("sweep", time.Minute, func() {}); err != nil {
		t.Fatalf("AddInterval() error = %v", err)
	}
}

func TestNilService(t *testing.T) {
	var svc *Service
	if err := svc.Stop(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Stop() error = %v, want ErrNotInitialized", err)
	}
	if _, err := svc.AddInterval("x", time.Second, func() {}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("AddInterval() error = %v, want ErrNotInitialized", err)
	}
}
