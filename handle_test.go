package sched

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHandleSettleAndRead(t *testing.T) {
	h := newHandle[string]()

	select {
	case <-h.Done():
		t.Fatal("Done closed before settlement")
	default:
	}

	h.settle("ok", nil)

	select {
	case <-h.Done():
	default:
		t.Fatal("Done not closed after settlement")
	}
	for i := 0; i < 2; i++ {
		v, err := h.Result()
		if v != "ok" || err != nil {
			t.Fatalf("read %d = (%q, %v); want (ok, nil)", i, v, err)
		}
	}
}

func TestHandleSettleTwicePanics(t *testing.T) {
	h := newHandle[int]()
	h.settle(1, nil)

	defer func() {
		if recover() == nil {
			t.Fatal("second settle did not panic")
		}
	}()
	h.settle(2, nil)
}

func TestHandleSettleWithError(t *testing.T) {
	h := newHandle[int]()
	boom := errors.New("boom")
	h.settle(0, boom)

	if _, err := h.Result(); !errors.Is(err, boom) {
		t.Fatalf("err = %v; want %v", err, boom)
	}
}

func TestHandleWaitHonorsContext(t *testing.T) {
	h := newHandle[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := h.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait err = %v; want deadline exceeded", err)
	}

	h.settle(5, nil)
	v, err := h.Wait(context.Background())
	if v != 5 || err != nil {
		t.Fatalf("Wait after settle = (%d, %v); want (5, nil)", v, err)
	}
}
